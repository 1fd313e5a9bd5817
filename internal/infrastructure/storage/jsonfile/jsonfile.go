// Package jsonfile is the default persistence backend: one JSON
// document per file, rewritten whole on every save.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"fittrack/internal/infrastructure/storage"
	"fittrack/internal/model"
)

type UserStore struct {
	path   string
	policy storage.CorruptPolicy
	log    *slog.Logger
}

func NewUserStore(path string, policy storage.CorruptPolicy, log *slog.Logger) *UserStore {
	return &UserStore{
		path:   path,
		policy: policy,
		log:    log.With("component", "jsonfile_store"),
	}
}

// Load reads the whole users document. A missing file is an empty
// document. A file that fails to parse is handled per policy: reset
// returns an empty document, fail surfaces storage.ErrCorrupt.
func (s *UserStore) Load(_ context.Context) (model.Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.policy == storage.CorruptFail {
			return nil, fmt.Errorf("%w: %s: %v", storage.ErrCorrupt, s.path, err)
		}
		s.log.Warn("users file is unreadable, starting empty", "path", s.path, "error", err)
		return model.Document{}, nil
	}
	if doc == nil {
		doc = model.Document{}
	}
	return doc, nil
}

// Save serializes the full document and replaces the file atomically:
// write to a temp file in the same directory, then rename over the
// target. A crash mid-write leaves the previous file intact.
func (s *UserStore) Save(_ context.Context, doc model.Document) error {
	return writeJSONAtomic(s.path, doc)
}

func (s *UserStore) Close() error { return nil }

func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
