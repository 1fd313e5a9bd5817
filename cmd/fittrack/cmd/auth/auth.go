package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for account operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account management",
	Long:  `Register, log in and log out.`,
}
