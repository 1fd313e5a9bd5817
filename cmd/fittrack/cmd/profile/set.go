package profile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit your profile",
	Long: `Prompts for each profile field in turn, showing the current value.
An empty answer keeps it.`,
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

		scanner := bufio.NewScanner(os.Stdin)
		for _, field := range Fields {
			current := profile[field]
			if current == "" {
				fmt.Printf("%s: ", field)
			} else {
				fmt.Printf("%s [%s]: ", field, current)
			}
			if !scanner.Scan() {
				break
			}
			if answer := strings.TrimSpace(scanner.Text()); answer != "" {
				profile[field] = answer
			}
		}

		if err := a.Users.SaveProfile(cmd.Context(), username, profile); err != nil {
			return err
		}
		color.Green("Profile saved!")
		return nil
	},
}
