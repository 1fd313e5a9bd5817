package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"fittrack/internal/domain/user"
	"fittrack/internal/domain/workout"
	"fittrack/internal/model"
)

// memStore is an in-memory Store that counts saves and hands Load a
// deep-enough copy so reloads behave like a real file read.
type memStore struct {
	doc   model.Document
	saves int
}

func newMemStore() *memStore {
	return &memStore{doc: model.Document{}}
}

func (s *memStore) Load(_ context.Context) (model.Document, error) {
	out := model.Document{}
	for name, rec := range s.doc {
		cp := *rec
		cp.Workouts = append([]model.Workout{}, rec.Workouts...)
		out[name] = &cp
	}
	return out, nil
}

func (s *memStore) Save(_ context.Context, doc model.Document) error {
	s.doc = doc
	s.saves++
	return nil
}

func (s *memStore) Close() error { return nil }

func newTestRepo(t *testing.T) (*Document, *memStore) {
	t.Helper()
	store := newMemStore()
	repo, err := New(context.Background(), store, slog.Default())
	require.NoError(t, err)
	return repo, store
}

func sampleWorkout(createdAt string) model.Workout {
	return model.Workout{
		Date:        "2024-03-15",
		Type:        "Running",
		DurationMin: 30,
		Calories:    250,
		CreatedAt:   createdAt,
	}
}

func TestDocument_CreateUser(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, "alice", "secret"))
	assert.Equal(t, 1, store.saves)

	rec, err := repo.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret", rec.Password)
	assert.NotNil(t, rec.Profile)
	assert.NotNil(t, rec.Workouts)
}

func TestDocument_CreateUser_Duplicate(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, "alice", "secret"))
	err := repo.CreateUser(ctx, "alice", "other")

	assert.ErrorIs(t, err, user.ErrDuplicateUser)
	assert.Equal(t, 1, store.saves)
}

func TestDocument_CreateUser_CaseSensitive(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, "alice", "secret"))
	assert.NoError(t, repo.CreateUser(ctx, "Alice", "secret"))
}

func TestDocument_FindUser_Unknown(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestDocument_SaveProfile(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, "alice", "secret"))
	require.NoError(t, repo.SaveProfile(ctx, "alice", map[string]string{"name": "Alice"}))
	assert.Equal(t, 2, store.saves)

	rec, err := repo.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.Profile["name"])

	assert.ErrorIs(t, repo.SaveProfile(ctx, "ghost", nil), user.ErrNotFound)
}

func TestDocument_ListWorkouts_UnknownUserEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.ListWorkouts(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDocument_ListWorkouts_ReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, "alice", "secret"))
	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("a")))

	got, err := repo.ListWorkouts(ctx, "alice")
	require.NoError(t, err)
	got[0].Type = "Tampered"

	again, err := repo.ListWorkouts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Running", again[0].Type)
}

func TestDocument_AppendWorkout_CreatesScaffold(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("a")))
	assert.Equal(t, 1, store.saves)

	rec, err := repo.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, rec.Password)
	assert.Len(t, rec.Workouts, 1)
}

func TestDocument_AppendWorkout_InsertionOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("a")))
	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("b")))
	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("c")))

	got, err := repo.ListWorkouts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].CreatedAt)
	assert.Equal(t, "c", got[2].CreatedAt)
}

func TestDocument_UpdateWorkout(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("a")))
	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("b")))

	updated := model.Workout{Date: "2024-04-01", Type: "Yoga", DurationMin: 60, Calories: 150}
	require.NoError(t, repo.UpdateWorkout(ctx, "alice", "b", updated))
	assert.Equal(t, 3, store.saves)

	got, err := repo.ListWorkouts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Yoga", got[1].Type)
	// identity survives even though the replacement left it blank
	assert.Equal(t, "b", got[1].CreatedAt)
	assert.Equal(t, "a", got[0].CreatedAt)
}

func TestDocument_UpdateWorkout_NotFound(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("a")))

	assert.ErrorIs(t, repo.UpdateWorkout(ctx, "alice", "missing", sampleWorkout("x")), workout.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateWorkout(ctx, "ghost", "a", sampleWorkout("x")), workout.ErrNotFound)
	assert.Equal(t, 1, store.saves)
}

func TestDocument_DeleteWorkout(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("a")))
	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("b")))
	require.NoError(t, repo.AppendWorkout(ctx, "alice", sampleWorkout("c")))

	require.NoError(t, repo.DeleteWorkout(ctx, "alice", "b"))

	got, err := repo.ListWorkouts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].CreatedAt)
	assert.Equal(t, "c", got[1].CreatedAt)

	assert.ErrorIs(t, repo.DeleteWorkout(ctx, "alice", "b"), workout.ErrNotFound)
}

func TestDocument_Reload_PicksUpExternalChanges(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, "alice", "secret"))

	// simulate the file changing underneath us
	store.doc["bob"] = model.NewUserRecord("hunter2")

	require.NoError(t, repo.Reload(ctx))

	_, err := repo.FindUser(ctx, "bob")
	assert.NoError(t, err)
}
