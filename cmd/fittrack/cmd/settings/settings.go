package settings

import (
	"github.com/spf13/cobra"
)

var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change app settings",
}
