package workout

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"fittrack/internal/model"
)

// CSVHeader is the canonical column order for workout files.
var CSVHeader = []string{"date", "type", "duration_min", "calories", "notes", "created_at"}

// ExportCSV writes the collection in its current order, one row per
// workout. encoding/csv quotes embedded commas and newlines in notes.
func ExportCSV(w io.Writer, workouts []model.Workout) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, wk := range workouts {
		row := []string{
			wk.Date,
			wk.Type,
			strconv.Itoa(wk.DurationMin),
			strconv.Itoa(wk.Calories),
			wk.Notes,
			wk.CreatedAt,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses workout rows. Import is deliberately laxer than
// interactive entry: integer cells default to 0 when empty or
// non-numeric, and a blank created_at is stamped with the current UTC
// time, which creates a new identity rather than matching an existing
// record. Rows whose date does not parse as YYYY-MM-DD are skipped;
// the skip count is returned alongside the records.
func ImportCSV(r io.Reader, now func() time.Time) ([]model.Workout, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []model.Workout{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var (
		out     []model.Workout
		skipped int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		date := cell(row, "date")
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			skipped++
			continue
		}

		createdAt := cell(row, "created_at")
		if createdAt == "" {
			createdAt = now().UTC().Format(time.RFC3339Nano)
		}

		out = append(out, model.Workout{
			Date:        date,
			Type:        cell(row, "type"),
			DurationMin: lenientAtoi(cell(row, "duration_min")),
			Calories:    lenientAtoi(cell(row, "calories")),
			Notes:       cell(row, "notes"),
			CreatedAt:   createdAt,
		})
	}
	return out, skipped, nil
}

func lenientAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Import appends every parsed row to the user's ledger. Row failures
// are per-row; a bad row never aborts the rest of the file.
func (s *Service) Import(ctx context.Context, username string, r io.Reader) (added, skipped int, err error) {
	records, skipped, err := ImportCSV(r, s.now)
	if err != nil {
		return 0, skipped, err
	}
	for _, w := range records {
		if err := s.repo.AppendWorkout(ctx, username, w); err != nil {
			return added, skipped, err
		}
		added++
	}
	s.log.Info("workouts imported", "username", username, "added", added, "skipped", skipped)
	return added, skipped, nil
}

// Export writes the user's workouts in stored order.
func (s *Service) Export(ctx context.Context, username string, w io.Writer) (int, error) {
	all, err := s.repo.ListWorkouts(ctx, username)
	if err != nil {
		return 0, err
	}
	if err := ExportCSV(w, all); err != nil {
		return 0, err
	}
	return len(all), nil
}
