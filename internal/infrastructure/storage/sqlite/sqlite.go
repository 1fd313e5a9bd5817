// Package sqlite is an alternative persistence backend keeping the
// same whole-document Load/Save contract as the JSON file store: one
// row per user, the record serialized as a JSON column.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"fittrack/internal/infrastructure/migration"
	"fittrack/internal/infrastructure/storage"
	"fittrack/internal/model"
)

type UserStore struct {
	db     *sql.DB
	policy storage.CorruptPolicy
	log    *slog.Logger
}

func NewUserStore(path string, policy storage.CorruptPolicy, log *slog.Logger) (*UserStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	mg := migration.New("sqlite3://"+path, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &UserStore{
		db:     db,
		policy: policy,
		log:    log.With("component", "sqlite_store"),
	}, nil
}

// Load reads every user row into the document. A row whose record
// column fails to parse is handled per policy: reset skips it, fail
// surfaces storage.ErrCorrupt.
func (s *UserStore) Load(ctx context.Context) (model.Document, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT username, record FROM users")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	doc := model.Document{}
	for rows.Next() {
		var username, raw string
		if err := rows.Scan(&username, &raw); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}

		var rec model.UserRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			if s.policy == storage.CorruptFail {
				return nil, fmt.Errorf("%w: user %q: %v", storage.ErrCorrupt, username, err)
			}
			s.log.Warn("user row is unreadable, skipping", "username", username, "error", err)
			continue
		}
		doc[username] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return doc, nil
}

// Save replaces the whole table with the document in one transaction.
func (s *UserStore) Save(ctx context.Context, doc model.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO users (username, record) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for username, rec := range doc {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal user %q: %w", username, err)
		}
		if _, err := stmt.ExecContext(ctx, username, string(raw)); err != nil {
			return fmt.Errorf("insert user %q: %w", username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *UserStore) Close() error {
	return s.db.Close()
}
