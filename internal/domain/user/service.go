package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"fittrack/internal/model"
)

type Servicer interface {
	Register(ctx context.Context, username, password, confirm string) error
	Authenticate(ctx context.Context, username, password string) (*model.UserRecord, error)
	Profile(ctx context.Context, username string) (map[string]string, error)
	SaveProfile(ctx context.Context, username string, profile map[string]string) error
}

type Service struct {
	repo Repository
	auth AuthProvider
	log  *slog.Logger
}

func NewService(repo Repository, auth AuthProvider, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		auth: auth,
		log:  log.With("component", "user_service"),
	}
}

// Register creates a new user with an empty profile and workout list.
// The username is taken verbatim (case-sensitive) after trimming the
// surrounding whitespace the UI lets through.
func (s *Service) Register(ctx context.Context, username, password, confirm string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if username == "" || password == "" || confirm == "" {
		return ErrMissingField
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	stored, err := s.auth.Store(password)
	if err != nil {
		return fmt.Errorf("prepare password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, username, stored); err != nil {
		return err
	}

	s.log.Info("user registered", "username", username)
	return nil
}

// Authenticate yields the user record on success. An unknown username
// and a wrong password surface identically as ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.UserRecord, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, ErrMissingField
	}

	rec, err := s.repo.FindUser(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !s.auth.Verify(rec.Password, password) {
		return nil, ErrInvalidCredentials
	}

	s.log.Debug("user authenticated", "username", username)
	return rec, nil
}

// Profile returns a copy of the user's profile mapping.
func (s *Service) Profile(ctx context.Context, username string) (map[string]string, error) {
	rec, err := s.repo.FindUser(ctx, username)
	if err != nil {
		return nil, err
	}
	profile := make(map[string]string, len(rec.Profile))
	for k, v := range rec.Profile {
		profile[k] = v
	}
	return profile, nil
}

// SaveProfile overwrites the profile mapping unconditionally. Any
// string value is accepted, including empty ones.
func (s *Service) SaveProfile(ctx context.Context, username string, profile map[string]string) error {
	if profile == nil {
		profile = map[string]string{}
	}
	if err := s.repo.SaveProfile(ctx, username, profile); err != nil {
		return err
	}
	s.log.Info("profile saved", "username", username, "fields", len(profile))
	return nil
}
