package stats

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/stats"
)

var DurationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Workout duration over time",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		workouts, err := a.Workouts.List(cmd.Context(), username, "")
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found")
			return nil
		}

		fmt.Println("Duration per workout, oldest first:")
		fmt.Println()
		drawBars(os.Stdout, stats.DurationOverTime(workouts), "min")
		return nil
	},
}
