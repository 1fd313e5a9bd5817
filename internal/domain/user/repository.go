package user

import (
	"context"

	"fittrack/internal/model"
)

// Repository is the user slice of the document repository.
type Repository interface {
	CreateUser(ctx context.Context, username, password string) error
	FindUser(ctx context.Context, username string) (*model.UserRecord, error)
	SaveProfile(ctx context.Context, username string, profile map[string]string) error
}
