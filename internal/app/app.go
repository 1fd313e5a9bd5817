// Package app wires configuration, storage and the domain services
// into the client application the command layer talks to.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"fittrack/internal/config"
	"fittrack/internal/domain/user"
	"fittrack/internal/domain/workout"
	"fittrack/internal/infrastructure/repository"
	"fittrack/internal/infrastructure/storage"
	"fittrack/internal/infrastructure/storage/jsonfile"
	"fittrack/internal/infrastructure/storage/sqlite"
	"fittrack/internal/model"
)

// ErrNotLoggedIn is returned when a command needs an active session
// and none exists.
var ErrNotLoggedIn = errors.New("not logged in, run \"fittrack auth login\" first")

type App struct {
	cfg      *config.Config
	log      *slog.Logger
	store    storage.Store
	settings storage.SettingsStore
	repo     *repository.Document

	Users    user.Servicer
	Workouts workout.Servicer
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	policy := storage.CorruptPolicy(cfg.OnCorrupt)

	var store storage.Store
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		s, err := sqlite.NewUserStore(cfg.DatabasePath, policy, log)
		if err != nil {
			return nil, fmt.Errorf("init sqlite store: %w", err)
		}
		store = s
	default:
		store = jsonfile.NewUserStore(cfg.UsersPath, policy, log)
	}

	repo, err := repository.New(ctx, store, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		cfg:      cfg,
		log:      log,
		store:    store,
		settings: jsonfile.NewSettingsStore(cfg.SettingsPath, log),
		repo:     repo,
		Users:    user.NewService(repo, user.ProviderFor(cfg.AuthScheme), log),
		Workouts: workout.NewService(repo, log),
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// Reload re-reads the users document from disk, backing the explicit
// refresh command.
func (a *App) Reload(ctx context.Context) error {
	return a.repo.Reload(ctx)
}

// CurrentUser returns the username of the active session.
func (a *App) CurrentUser() (string, error) {
	data, err := os.ReadFile(a.cfg.SessionPath)
	if os.IsNotExist(err) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	username := strings.TrimSpace(string(data))
	if username == "" {
		return "", ErrNotLoggedIn
	}
	return username, nil
}

// SaveSession records the logged-in user.
func (a *App) SaveSession(username string) error {
	if err := os.WriteFile(a.cfg.SessionPath, []byte(username+"\n"), 0o600); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.log.Debug("session saved", "username", username)
	return nil
}

// ClearSession logs the user out.
func (a *App) ClearSession() error {
	err := os.Remove(a.cfg.SessionPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Settings loads the app settings with defaults merged in.
func (a *App) Settings(ctx context.Context) (model.Settings, error) {
	return a.settings.Load(ctx)
}

// SaveSettings persists a settings change immediately.
func (a *App) SaveSettings(ctx context.Context, s model.Settings) error {
	return a.settings.Save(ctx, s)
}
