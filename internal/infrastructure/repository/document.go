// Package repository owns the in-memory users document. Every mutation
// is read-modify-write against the document followed by a synchronous
// full save, so the store always holds the latest state.
package repository

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"fittrack/internal/domain/user"
	"fittrack/internal/domain/workout"
	"fittrack/internal/infrastructure/storage"
	"fittrack/internal/model"
)

type Document struct {
	store storage.Store
	doc   model.Document
	log   *slog.Logger
}

// New loads the document once; it stays in memory until Reload.
func New(ctx context.Context, store storage.Store, log *slog.Logger) (*Document, error) {
	doc, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users document: %w", err)
	}
	return &Document{
		store: store,
		doc:   doc,
		log:   log.With("component", "document_repository"),
	}, nil
}

// Reload re-reads the document from the store, dropping in-memory
// state. Used by the explicit refresh action.
func (r *Document) Reload(ctx context.Context) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload users document: %w", err)
	}
	r.doc = doc
	return nil
}

func (r *Document) persist(ctx context.Context) error {
	if err := r.store.Save(ctx, r.doc); err != nil {
		return fmt.Errorf("save users document: %w", err)
	}
	return nil
}

// CreateUser adds a new user record. Usernames are unique and
// case-sensitive.
func (r *Document) CreateUser(ctx context.Context, username, password string) error {
	if _, exists := r.doc[username]; exists {
		return user.ErrDuplicateUser
	}
	r.doc[username] = model.NewUserRecord(password)
	return r.persist(ctx)
}

// FindUser returns the live record for a username.
func (r *Document) FindUser(_ context.Context, username string) (*model.UserRecord, error) {
	rec, ok := r.doc[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return rec, nil
}

// SaveProfile overwrites the user's whole profile mapping.
func (r *Document) SaveProfile(ctx context.Context, username string, profile map[string]string) error {
	rec, ok := r.doc[username]
	if !ok {
		return user.ErrNotFound
	}
	rec.Profile = profile
	return r.persist(ctx)
}

// ListWorkouts returns a copy of the user's workouts in insertion
// order. An unknown user yields an empty slice, not an error.
func (r *Document) ListWorkouts(_ context.Context, username string) ([]model.Workout, error) {
	rec, ok := r.doc[username]
	if !ok {
		return []model.Workout{}, nil
	}
	out := make([]model.Workout, len(rec.Workouts))
	copy(out, rec.Workouts)
	return out, nil
}

// AppendWorkout appends a workout, creating the user scaffold if it is
// somehow missing rather than failing.
func (r *Document) AppendWorkout(ctx context.Context, username string, w model.Workout) error {
	rec, ok := r.doc[username]
	if !ok {
		rec = model.NewUserRecord("")
		r.doc[username] = rec
	}
	rec.Workouts = append(rec.Workouts, w)
	return r.persist(ctx)
}

// UpdateWorkout overwrites the record identified by createdAt in
// place. The identity field itself is never rewritten.
func (r *Document) UpdateWorkout(ctx context.Context, username, createdAt string, w model.Workout) error {
	rec, ok := r.doc[username]
	if !ok {
		return workout.ErrNotFound
	}
	for i := range rec.Workouts {
		if rec.Workouts[i].CreatedAt == createdAt {
			w.CreatedAt = createdAt
			rec.Workouts[i] = w
			return r.persist(ctx)
		}
	}
	return workout.ErrNotFound
}

// DeleteWorkout removes the first record whose createdAt matches.
func (r *Document) DeleteWorkout(ctx context.Context, username, createdAt string) error {
	rec, ok := r.doc[username]
	if !ok {
		return workout.ErrNotFound
	}
	for i := range rec.Workouts {
		if rec.Workouts[i].CreatedAt == createdAt {
			rec.Workouts = append(rec.Workouts[:i], rec.Workouts[i+1:]...)
			return r.persist(ctx)
		}
	}
	return workout.ErrNotFound
}
