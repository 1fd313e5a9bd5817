package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"fittrack/internal/model"
)

type SettingsStore struct {
	path string
	log  *slog.Logger
}

func NewSettingsStore(path string, log *slog.Logger) *SettingsStore {
	return &SettingsStore{
		path: path,
		log:  log.With("component", "settings_store"),
	}
}

// Load returns defaults when the file is absent or unreadable.
// Unmarshalling over the defaults struct keeps default values for any
// key the on-disk file predates.
func (s *SettingsStore) Load(_ context.Context) (model.Settings, error) {
	out := model.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("read settings file: %w", err)
	}

	if err := json.Unmarshal(data, &out); err != nil {
		s.log.Warn("settings file is unreadable, using defaults", "path", s.path, "error", err)
		return model.DefaultSettings(), nil
	}
	return out, nil
}

func (s *SettingsStore) Save(_ context.Context, settings model.Settings) error {
	return writeJSONAtomic(s.path, settings)
}
