package stats

import (
	"time"

	"fittrack/internal/model"
)

// Point is one (label, value) entry of a chart-ready series. The UI
// layer only ever plots these; it never recomputes.
type Point struct {
	Label string
	Value int
}

// WeeklyCaloriesSeries is the last-7-days calories chart: one point
// per day ending today, labeled with the weekday abbreviation.
func WeeklyCaloriesSeries(workouts []model.Workout, today time.Time) []Point {
	window := RollingWindow(workouts, today, 7)
	out := make([]Point, len(window))
	for i, b := range window {
		d, _ := time.Parse(model.DateLayout, b.Day)
		out[i] = Point{Label: d.Format("Mon"), Value: b.Calories}
	}
	return out
}

// DurationOverTime is the duration time-series chart: one point per
// workout, date-labeled, ascending.
func DurationOverTime(workouts []model.Workout) []Point {
	series := DurationSeries(workouts)
	out := make([]Point, len(series))
	for i, p := range series {
		out[i] = Point{Label: p.Date, Value: p.DurationMin}
	}
	return out
}
