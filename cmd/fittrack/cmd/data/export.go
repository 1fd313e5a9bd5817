package data

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/model"
)

var exportOutput string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export workouts to a CSV file",
	Long: `Writes the logged-in user's workouts as CSV. Without --output the
file is named <username>_workouts_<today>.csv in the current directory;
"-" writes to stdout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		if exportOutput == "-" {
			_, err := a.Workouts.Export(cmd.Context(), username, os.Stdout)
			return err
		}

		path := exportOutput
		if path == "" {
			path = fmt.Sprintf("%s_workouts_%s.csv", username, time.Now().Format(model.DateLayout))
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()

		count, err := a.Workouts.Export(cmd.Context(), username, f)
		if err != nil {
			return err
		}

		color.Green("Exported %d workouts to %s", count, path)
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default <username>_workouts_<today>.csv, \"-\" for stdout)")
}
