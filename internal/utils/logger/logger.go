package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"fittrack/internal/config"
)

// New builds the app logger for an environment: readable text with
// debug level for local work, JSON with debug for dev, JSON with info
// for prod.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
