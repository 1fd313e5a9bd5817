package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		if err := a.ClearSession(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}
