package data

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workouts from a CSV file",
	Long: `Appends workouts from a CSV file to the logged-in user's ledger.
Rows with an unparseable date are skipped and counted; everything else
is taken as-is, with missing numbers read as 0.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		added, skipped, err := a.Workouts.Import(cmd.Context(), username, f)
		if err != nil {
			return err
		}

		color.Green("Imported %d workouts", added)
		if skipped > 0 {
			fmt.Printf("Skipped %d rows with invalid dates\n", skipped)
		}
		return nil
	},
}
