package workout

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show workout history, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		workouts, err := a.Workouts.History(cmd.Context(), username)
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Date\tType\tDuration\tCalories\tNotes\t\n")
		for _, wk := range workouts {
			fmt.Fprintf(w, "%s\t%s\t%d min\t%d\t%s\t\n",
				wk.Date,
				wk.Type,
				wk.DurationMin,
				wk.Calories,
				truncate(wk.Notes, 40),
			)
		}
		w.Flush()
		return nil
	},
}
