package settings

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var SetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Sets a boolean setting and saves it immediately. Keys: dark_mode,
sidebar_collapsed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		value, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("value must be true or false, got %q", args[1])
		}

		s, err := a.Settings(cmd.Context())
		if err != nil {
			return err
		}

		switch args[0] {
		case "dark_mode":
			s.DarkMode = value
		case "sidebar_collapsed":
			s.SidebarCollapsed = value
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}

		if err := a.SaveSettings(cmd.Context(), s); err != nil {
			return err
		}
		color.Green("Setting saved")
		return nil
	},
}
