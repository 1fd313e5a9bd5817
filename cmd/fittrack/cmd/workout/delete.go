package workout

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/workout"
)

var deleteID string

var DeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a workout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		if err := a.Workouts.Delete(cmd.Context(), username, deleteID); err != nil {
			if errors.Is(err, workout.ErrNotFound) {
				return fmt.Errorf("no workout with ID %q", deleteID)
			}
			return err
		}

		fmt.Println("Workout deleted.")
		return nil
	},
}

func init() {
	DeleteCmd.Flags().StringVar(&deleteID, "id", "", "creation timestamp of the workout to delete")
	_ = DeleteCmd.MarkFlagRequired("id")
}
