package workout

import (
	"context"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"fittrack/internal/model"
)

// Input carries the raw field text the UI collected. Parsing and
// validation happen here, before anything touches the document.
type Input struct {
	Date     string
	Type     string
	Duration string
	Calories string
	Notes    string
}

type Servicer interface {
	Add(ctx context.Context, username string, in Input) (model.Workout, error)
	Update(ctx context.Context, username, createdAt string, in Input) (model.Workout, error)
	Delete(ctx context.Context, username, createdAt string) error
	List(ctx context.Context, username, date string) ([]model.Workout, error)
	History(ctx context.Context, username string) ([]model.Workout, error)
	Import(ctx context.Context, username string, r io.Reader) (added, skipped int, err error)
	Export(ctx context.Context, username string, w io.Writer) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "workout_service"),
		now:  time.Now,
	}
}

// validate parses the raw input into a workout, leaving CreatedAt
// empty. The checks run in a fixed order, so the first problem wins.
func validate(in Input) (model.Workout, error) {
	typ := strings.TrimSpace(in.Type)
	durationStr := strings.TrimSpace(in.Duration)
	caloriesStr := strings.TrimSpace(in.Calories)

	if typ == "" || typ == model.TypePlaceholder {
		return model.Workout{}, ErrMissingType
	}
	if durationStr == "" || caloriesStr == "" {
		return model.Workout{}, ErrMissingField
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return model.Workout{}, ErrInvalidNumber
	}
	calories, err := strconv.Atoi(caloriesStr)
	if err != nil {
		return model.Workout{}, ErrInvalidNumber
	}

	if duration <= 0 {
		return model.Workout{}, ErrInvalidDuration
	}
	if calories < 0 {
		return model.Workout{}, ErrInvalidCalories
	}

	return model.Workout{
		Date:        strings.TrimSpace(in.Date),
		Type:        typ,
		DurationMin: duration,
		Calories:    calories,
		Notes:       strings.TrimSpace(in.Notes),
	}, nil
}

// Add validates, stamps the created_at identity and appends. Nothing
// is persisted when validation fails.
func (s *Service) Add(ctx context.Context, username string, in Input) (model.Workout, error) {
	w, err := validate(in)
	if err != nil {
		return model.Workout{}, err
	}

	w.CreatedAt = s.now().UTC().Format(time.RFC3339Nano)
	if err := s.repo.AppendWorkout(ctx, username, w); err != nil {
		s.log.Error("failed to append workout", "username", username, "error", err)
		return model.Workout{}, err
	}

	s.log.Info("workout added", "username", username, "type", w.Type, "date", w.Date)
	return w, nil
}

// Update overwrites the record identified by createdAt with the
// validated input. The identity never changes.
func (s *Service) Update(ctx context.Context, username, createdAt string, in Input) (model.Workout, error) {
	w, err := validate(in)
	if err != nil {
		return model.Workout{}, err
	}

	if err := s.repo.UpdateWorkout(ctx, username, createdAt, w); err != nil {
		return model.Workout{}, err
	}
	w.CreatedAt = createdAt

	s.log.Info("workout updated", "username", username, "created_at", createdAt)
	return w, nil
}

func (s *Service) Delete(ctx context.Context, username, createdAt string) error {
	if err := s.repo.DeleteWorkout(ctx, username, createdAt); err != nil {
		return err
	}
	s.log.Info("workout deleted", "username", username, "created_at", createdAt)
	return nil
}

// List returns workouts in insertion order. A non-empty date keeps
// only records whose date field equals it exactly; no parsing is done.
func (s *Service) List(ctx context.Context, username, date string) ([]model.Workout, error) {
	all, err := s.repo.ListWorkouts(ctx, username)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return all, nil
	}

	out := make([]model.Workout, 0, len(all))
	for _, w := range all {
		if w.Date == date {
			out = append(out, w)
		}
	}
	return out, nil
}

// History returns workouts sorted newest-first by date for the history
// view. The sort is stable and works on a copy; the stored order stays
// untouched.
func (s *Service) History(ctx context.Context, username string) ([]model.Workout, error) {
	all, err := s.repo.ListWorkouts(ctx, username)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date > all[j].Date
	})
	return all, nil
}
