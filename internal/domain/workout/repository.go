package workout

import (
	"context"

	"fittrack/internal/model"
)

// Repository is the workout slice of the document repository. Lookup
// for update/delete is by the created_at identity string.
type Repository interface {
	ListWorkouts(ctx context.Context, username string) ([]model.Workout, error)
	AppendWorkout(ctx context.Context, username string, w model.Workout) error
	UpdateWorkout(ctx context.Context, username, createdAt string, w model.Workout) error
	DeleteWorkout(ctx context.Context, username, createdAt string) error
}
