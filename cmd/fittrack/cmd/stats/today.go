package stats

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/stats"
	"fittrack/internal/model"
)

var todayDate string

var TodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's workout totals",
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

		day := todayDate
		if day == "" {
			day = time.Now().Format(model.DateLayout)
		}

		t := stats.DailyTotals(workouts, day)
		fmt.Printf("Totals for %s:\n", day)
		fmt.Printf("  Workouts: %d\n", t.Count)
		fmt.Printf("  Duration: %d min\n", t.DurationMin)
		fmt.Printf("  Calories: %d kcal\n", t.Calories)
		return nil
	},
}

func init() {
	TodayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "day to total (YYYY-MM-DD, default today)")
}
