package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		s, err := a.Settings(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("dark_mode          %t\n", s.DarkMode)
		fmt.Printf("sidebar_collapsed  %t\n", s.SidebarCollapsed)
		return nil
	},
}
