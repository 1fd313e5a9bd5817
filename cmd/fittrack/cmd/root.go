package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"fittrack/cmd/fittrack/cmd/types"
	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/internal/utils/logger"
)

var (
	cfg   *config.Config
	log   *slog.Logger
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "FitTrack - a personal fitness logging application",
	Long: `FitTrack keeps a per-user ledger of workouts: log sessions with
type, duration, calories and notes, review your history, see daily and
weekly totals as charts, and round-trip everything through CSV.

Data lives locally under ~/.fittrack.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	if debug {
		cfg.Env = config.EnvLocal
	}

	log = logger.New(cfg.Env)

	a, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.AppKey, a))
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
