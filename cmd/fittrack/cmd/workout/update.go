package workout

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/workout"
)

var (
	updateID       string
	updateDate     string
	updateType     string
	updateDuration string
	updateCalories string
	updateNotes    string
)

var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit an existing workout",
	Long: `Replaces a workout's fields. The workout is addressed by its
creation timestamp (the ID column in "workout list"); the timestamp
itself never changes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		w, err := a.Workouts.Update(cmd.Context(), username, updateID, workout.Input{
			Date:     updateDate,
			Type:     updateType,
			Duration: updateDuration,
			Calories: updateCalories,
			Notes:    updateNotes,
		})
		if err != nil {
			if errors.Is(err, workout.ErrNotFound) {
				return fmt.Errorf("no workout with ID %q", updateID)
			}
			return err
		}

		color.Green("Workout updated!")
		fmt.Printf("%s  %s  %d min  %d kcal\n", w.Date, w.Type, w.DurationMin, w.Calories)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateID, "id", "", "creation timestamp of the workout to edit")
	UpdateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "workout date (YYYY-MM-DD)")
	UpdateCmd.Flags().StringVarP(&updateType, "type", "t", "", "workout type")
	UpdateCmd.Flags().StringVar(&updateDuration, "duration", "", "duration in minutes")
	UpdateCmd.Flags().StringVar(&updateCalories, "calories", "", "calories burned")
	UpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "optional notes")
	_ = UpdateCmd.MarkFlagRequired("id")
}
