package workout

import (
	"github.com/spf13/cobra"
)

// WorkoutCmd is the parent command for ledger operations.
var WorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and manage workouts",
	Long: `Add, list, edit and delete workouts for the logged-in user.

Workouts are identified by their creation timestamp; list output shows
it so edit and delete can reference the exact record.`,
}
