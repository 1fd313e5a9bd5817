package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/model"
)

func TestDailyTotals(t *testing.T) {
	workouts := []model.Workout{
		{Date: "2024-03-15", DurationMin: 30, Calories: 250},
		{Date: "2024-03-15", DurationMin: 60, Calories: 150},
		{Date: "2024-03-16", DurationMin: 45, Calories: 400},
	}

	got := DailyTotals(workouts, "2024-03-15")
	assert.Equal(t, DailyTotal{Count: 2, DurationMin: 90, Calories: 400}, got)

	assert.Zero(t, DailyTotals(workouts, "2024-03-14"))
	assert.Zero(t, DailyTotals(nil, "2024-03-15"))
}

func TestDailyTotals_ExactStringMatch(t *testing.T) {
	// a malformed stored date still matches itself, and nothing else
	workouts := []model.Workout{{Date: "15/03/2024", Calories: 100}}

	assert.Equal(t, 1, DailyTotals(workouts, "15/03/2024").Count)
	assert.Zero(t, DailyTotals(workouts, "2024-03-15").Count)
}

func TestRollingWindow_AlwaysSevenDaysOldestFirst(t *testing.T) {
	end := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	workouts := []model.Workout{
		{Date: "2024-03-15", Calories: 250},
		{Date: "2024-03-12", Calories: 100},
		{Date: "2024-03-12", Calories: 50},
		{Date: "2024-03-01", Calories: 999}, // outside the window
	}

	got := RollingWindow(workouts, end, 7)
	require.Len(t, got, 7)
	assert.Equal(t, "2024-03-09", got[0].Day)
	assert.Equal(t, "2024-03-15", got[6].Day)
	assert.Equal(t, 150, got[3].Calories)
	assert.Equal(t, 250, got[6].Calories)
	assert.Zero(t, got[1].Calories)
}

func TestRollingWindow_MatchesDailyTotals(t *testing.T) {
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	workouts := []model.Workout{
		{Date: "2024-03-13", Calories: 120},
		{Date: "2024-03-13", Calories: 80},
		{Date: "2024-03-15", Calories: 300},
	}

	for _, b := range RollingWindow(workouts, end, 7) {
		assert.Equal(t, DailyTotals(workouts, b.Day).Calories, b.Calories, b.Day)
	}
}

func TestWeeklyTotals_MondayBuckets(t *testing.T) {
	// 2024-03-11 is a Monday, 2024-03-17 the following Sunday
	workouts := []model.Workout{
		{Date: "2024-03-11", Calories: 100},
		{Date: "2024-03-17", Calories: 200},
		{Date: "2024-03-18", Calories: 300}, // next Monday
		{Date: "garbage", Calories: 999},
	}

	got := WeeklyTotals(workouts)
	assert.Equal(t, map[string]int{
		"2024-03-11": 300,
		"2024-03-18": 300,
	}, got)
}

func TestWeeklyTotals_Empty(t *testing.T) {
	assert.Empty(t, WeeklyTotals(nil))
}

func TestDurationSeries_StableAscending(t *testing.T) {
	workouts := []model.Workout{
		{Date: "2024-03-16", DurationMin: 20},
		{Date: "2024-03-15", DurationMin: 30},
		{Date: "2024-03-15", DurationMin: 60},
	}

	got := DurationSeries(workouts)
	require.Len(t, got, 3)
	assert.Equal(t, DurationPoint{Date: "2024-03-15", DurationMin: 30}, got[0])
	assert.Equal(t, DurationPoint{Date: "2024-03-15", DurationMin: 60}, got[1])
	assert.Equal(t, DurationPoint{Date: "2024-03-16", DurationMin: 20}, got[2])

	// input order untouched
	assert.Equal(t, "2024-03-16", workouts[0].Date)
}

func TestWeeklyCaloriesSeries_WeekdayLabels(t *testing.T) {
	// 2024-03-15 is a Friday
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	workouts := []model.Workout{{Date: "2024-03-15", Calories: 250}}

	got := WeeklyCaloriesSeries(workouts, today)
	require.Len(t, got, 7)
	assert.Equal(t, Point{Label: "Sat", Value: 0}, got[0])
	assert.Equal(t, Point{Label: "Fri", Value: 250}, got[6])
}

func TestDurationOverTime(t *testing.T) {
	workouts := []model.Workout{
		{Date: "2024-03-16", DurationMin: 20},
		{Date: "2024-03-15", DurationMin: 30},
	}

	got := DurationOverTime(workouts)
	assert.Equal(t, []Point{
		{Label: "2024-03-15", Value: 30},
		{Label: "2024-03-16", Value: 20},
	}, got)
}
