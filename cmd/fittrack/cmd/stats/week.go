package stats

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/stats"
)

var WeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Calories over the last 7 days",
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

		fmt.Println("Calories burned, last 7 days:")
		fmt.Println()
		drawBars(os.Stdout, stats.WeeklyCaloriesSeries(workouts, time.Now()), "kcal")
		return nil
	},
}
