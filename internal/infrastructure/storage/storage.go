package storage

import (
	"context"
	"errors"

	"fittrack/internal/model"
)

// CorruptPolicy decides what Load does when the backing store exists
// but cannot be parsed.
type CorruptPolicy string

const (
	// CorruptReset replaces an unreadable store with an empty document
	// so the app always starts.
	CorruptReset CorruptPolicy = "reset"
	// CorruptFail surfaces the parse error instead of losing data.
	CorruptFail CorruptPolicy = "fail"
)

// ErrCorrupt wraps parse failures surfaced under CorruptFail.
var ErrCorrupt = errors.New("store is corrupt")

// Store persists the whole users document. Load returns an empty
// document when the store does not exist yet; Save overwrites the
// entire store in one step.
type Store interface {
	Load(ctx context.Context) (model.Document, error)
	Save(ctx context.Context, doc model.Document) error
	Close() error
}

// SettingsStore follows the same load/save contract over the settings
// document, with defaults merged in on load.
type SettingsStore interface {
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, s model.Settings) error
}
