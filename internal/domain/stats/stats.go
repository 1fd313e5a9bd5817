// Package stats derives summaries and chart series from a workout
// collection. Everything here is a pure function of its inputs; an
// empty collection yields empty or zero aggregates, never an error.
package stats

import (
	"sort"
	"time"

	"fittrack/internal/model"
)

// DailyTotal is one calendar day's sums.
type DailyTotal struct {
	Count       int
	DurationMin int
	Calories    int
}

// DailyTotals sums records whose date field equals day exactly. The
// comparison is string equality, never a parse, so malformed stored
// dates still match themselves.
func DailyTotals(workouts []model.Workout, day string) DailyTotal {
	var t DailyTotal
	for _, w := range workouts {
		if w.Date == day {
			t.Count++
			t.DurationMin += w.DurationMin
			t.Calories += w.Calories
		}
	}
	return t
}

// DayCalories is one bucket of a rolling window.
type DayCalories struct {
	Day      string
	Calories int
}

// RollingWindow buckets the nDays calendar days ending at end, oldest
// first. The result always has exactly nDays entries; days without
// workouts carry zero.
func RollingWindow(workouts []model.Workout, end time.Time, nDays int) []DayCalories {
	out := make([]DayCalories, 0, nDays)
	for i := 0; i < nDays; i++ {
		day := end.AddDate(0, 0, -(nDays - 1 - i)).Format(model.DateLayout)
		total := 0
		for _, w := range workouts {
			if w.Date == day {
				total += w.Calories
			}
		}
		out = append(out, DayCalories{Day: day, Calories: total})
	}
	return out
}

// WeeklyTotals groups calories by ISO week. A record's key is the
// Monday on or before its date, as YYYY-MM-DD. Records whose date does
// not parse are skipped, not counted and not an error.
func WeeklyTotals(workouts []model.Workout) map[string]int {
	out := map[string]int{}
	for _, w := range workouts {
		d, err := time.Parse(model.DateLayout, w.Date)
		if err != nil {
			continue
		}
		monday := d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
		out[monday.Format(model.DateLayout)] += w.Calories
	}
	return out
}

// DurationPoint is one entry of the duration time series.
type DurationPoint struct {
	Date        string
	DurationMin int
}

// DurationSeries sorts the collection ascending by date, ties kept in
// original order, and maps it to (date, duration) points.
func DurationSeries(workouts []model.Workout) []DurationPoint {
	sorted := make([]model.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	out := make([]DurationPoint, len(sorted))
	for i, w := range sorted {
		out[i] = DurationPoint{Date: w.Date, DurationMin: w.DurationMin}
	}
	return out
}
