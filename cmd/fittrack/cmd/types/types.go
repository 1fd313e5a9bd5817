package types

type contextKey string

// AppKey is the command-context key the wired application is stored
// under for every subcommand.
const AppKey contextKey = "app"
