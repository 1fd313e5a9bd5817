package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/auth"
	"fittrack/cmd/fittrack/cmd/data"
	"fittrack/cmd/fittrack/cmd/profile"
	"fittrack/cmd/fittrack/cmd/settings"
	"fittrack/cmd/fittrack/cmd/stats"
	"fittrack/cmd/fittrack/cmd/workout"
	"fittrack/internal/app"

	"fittrack/cmd/fittrack/cmd/types"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-read the data file from disk",
	Long: `Reloads the users document from storage, discarding in-memory
state. Useful after the file was edited or copied in from elsewhere.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		if err := a.Reload(cmd.Context()); err != nil {
			return err
		}

		username, err := a.CurrentUser()
		if err != nil {
			fmt.Println("Data reloaded.")
			return nil
		}
		workouts, err := a.Workouts.List(cmd.Context(), username, "")
		if err != nil {
			return err
		}
		fmt.Printf("Data reloaded: %d workouts for %s.\n", len(workouts), username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(workout.WorkoutCmd)
	workout.WorkoutCmd.AddCommand(workout.AddCmd)
	workout.WorkoutCmd.AddCommand(workout.ListCmd)
	workout.WorkoutCmd.AddCommand(workout.HistoryCmd)
	workout.WorkoutCmd.AddCommand(workout.UpdateCmd)
	workout.WorkoutCmd.AddCommand(workout.DeleteCmd)

	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)
	profile.ProfileCmd.AddCommand(profile.SetCmd)

	rootCmd.AddCommand(stats.StatsCmd)
	stats.StatsCmd.AddCommand(stats.TodayCmd)
	stats.StatsCmd.AddCommand(stats.WeekCmd)
	stats.StatsCmd.AddCommand(stats.DurationCmd)

	rootCmd.AddCommand(data.DataCmd)
	data.DataCmd.AddCommand(data.ExportCmd)
	data.DataCmd.AddCommand(data.ImportCmd)

	rootCmd.AddCommand(settings.SettingsCmd)
	settings.SettingsCmd.AddCommand(settings.ShowCmd)
	settings.SettingsCmd.AddCommand(settings.SetCmd)

	rootCmd.AddCommand(refreshCmd)
}
