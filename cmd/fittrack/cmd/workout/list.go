package workout

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/workout"
	"fittrack/internal/model"
)

var (
	listDate   string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	Long: `Lists the logged-in user's workouts in the order they were
logged. --date keeps only workouts on that exact date.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		workouts, err := a.Workouts.List(cmd.Context(), username, listDate)
		if err != nil {
			return err
		}

		switch listFormat {
		case "json":
			return printJSON(workouts)
		case "table":
			return printTable(workouts)
		case "csv":
			return workout.ExportCSV(os.Stdout, workouts)
		default:
			return printSimple(workouts)
		}
	},
}

func printSimple(workouts []model.Workout) error {
	if len(workouts) == 0 {
		fmt.Println("No workouts found")
		return nil
	}

	fmt.Printf("Found %d workouts:\n\n", len(workouts))
	for i, w := range workouts {
		fmt.Printf("%d. %s  %s  %d min  %d kcal\n", i+1, w.Date, w.Type, w.DurationMin, w.Calories)
		if w.Notes != "" {
			fmt.Printf("   Notes: %s\n", w.Notes)
		}
		fmt.Printf("   ID: %s\n", w.CreatedAt)
		fmt.Println()
	}
	return nil
}

func printTable(workouts []model.Workout) error {
	if len(workouts) == 0 {
		fmt.Println("No workouts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Date\tType\tDuration\tCalories\tNotes\tID\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")
	for _, wk := range workouts {
		fmt.Fprintf(w, "%s\t%s\t%d min\t%d\t%s\t%s\t\n",
			wk.Date,
			wk.Type,
			wk.DurationMin,
			wk.Calories,
			truncate(wk.Notes, 30),
			wk.CreatedAt,
		)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(workouts))
	return nil
}

func printJSON(workouts []model.Workout) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(workouts)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listDate, "date", "d", "", "only workouts on this date (YYYY-MM-DD)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, table, json, csv)")
}
