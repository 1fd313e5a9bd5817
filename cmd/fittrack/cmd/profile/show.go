package profile

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		username, err := a.CurrentUser()
		if err != nil {
			return err
		}

		profile, err := a.Users.Profile(cmd.Context(), username)
		if err != nil {
			return err
		}

		fmt.Printf("Profile for %s:\n\n", username)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, field := range Fields {
			value := profile[field]
			if value == "" {
				value = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t\n", field, value)
		}
		w.Flush()
		return nil
	},
}
