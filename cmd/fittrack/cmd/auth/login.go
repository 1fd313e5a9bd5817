package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in",
	Long: `Authenticates against the local user ledger and records the
session, so workout and stats commands know whose data to use.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		fmt.Println("=== Log in ===")
		fmt.Println()

		fmt.Print("Username: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		rec, err := a.Users.Authenticate(cmd.Context(), username, string(password))
		if err != nil {
			return err
		}

		if err := a.SaveSession(username); err != nil {
			return err
		}

		fmt.Println()
		color.Green("Login successful!")
		fmt.Printf("Hi, %s! You have %d workouts on record.\n", username, len(rec.Workouts))
		return nil
	},
}
