package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/domain/user"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Creates a new FitTrack account with an empty profile and workout
ledger. Usernames are case-sensitive and cannot be changed later.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := cmd.Context().Value(types.AppKey).(*app.App)

		fmt.Println("=== Create account ===")
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

		fmt.Print("Confirm password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		err = a.Users.Register(cmd.Context(), username, string(password), string(confirm))
		if errors.Is(err, user.ErrDuplicateUser) {
			return fmt.Errorf("username %q already exists", username)
		}
		if err != nil {
			return err
		}

		fmt.Println()
		color.Green("Account created successfully!")
		fmt.Println("Log in with: fittrack auth login")
		return nil
	},
}
