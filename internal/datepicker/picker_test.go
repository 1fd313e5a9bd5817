package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)
	}
}

func TestPicker_OpenFromFieldText(t *testing.T) {
	date := "2024-03-15"
	p := New(StringField{S: &date}, fixedNow(t))

	assert.False(t, p.IsOpen())
	p.Open()

	assert.True(t, p.IsOpen())
	assert.Equal(t, 2024, p.Year())
	assert.Equal(t, time.March, p.Month())
	assert.Equal(t, 15, p.Selected().Day())
}

func TestPicker_OpenFallsBackToToday(t *testing.T) {
	date := "not a date"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()

	assert.Equal(t, 2024, p.Year())
	assert.Equal(t, time.March, p.Month())
	assert.Equal(t, 20, p.Selected().Day())
	// the field is not rewritten until a pick happens
	assert.Equal(t, "not a date", date)
}

func TestPicker_NavigationKeepsSelection(t *testing.T) {
	date := "2024-03-15"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()

	p.NextMonth()
	p.NextMonth()
	p.NextMonth()

	assert.Equal(t, time.June, p.Month())
	assert.Equal(t, 2024, p.Year())
	// displayed month moved; the selection did not
	assert.Equal(t, time.March, p.Selected().Month())
	assert.Equal(t, 15, p.Selected().Day())
	assert.Equal(t, "2024-03-15", date)
}

func TestPicker_PickWritesThroughAndStaysOpen(t *testing.T) {
	date := "2024-03-15"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()

	p.NextMonth()
	p.NextMonth()
	p.NextMonth()
	p.Pick(10)

	assert.Equal(t, "2024-06-10", date)
	assert.True(t, p.IsOpen())

	p.Done()
	assert.False(t, p.IsOpen())
	assert.Equal(t, "2024-06-10", date)
}

func TestPicker_YearWrap(t *testing.T) {
	date := "2024-12-05"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()

	p.NextMonth()
	assert.Equal(t, time.January, p.Month())
	assert.Equal(t, 2025, p.Year())

	p.PrevMonth()
	assert.Equal(t, time.December, p.Month())
	assert.Equal(t, 2024, p.Year())

	date = "2024-01-05"
	p.Open()
	p.PrevMonth()
	assert.Equal(t, time.December, p.Month())
	assert.Equal(t, 2023, p.Year())
}

func TestPicker_PickToday(t *testing.T) {
	date := "2020-01-01"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()
	p.NextMonth()

	p.PickToday()

	assert.Equal(t, "2024-03-20", date)
	assert.False(t, p.IsOpen())
}

func TestPicker_ReopenRereadsField(t *testing.T) {
	date := "2024-03-15"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()
	p.Pick(20)
	p.Done()

	date = "2025-07-04"
	p.Open()

	assert.Equal(t, 2025, p.Year())
	assert.Equal(t, time.July, p.Month())
	assert.Equal(t, 4, p.Selected().Day())
}

func TestPicker_MonthGrid(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days
	date := "2024-03-15"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()

	grid := p.MonthGrid()
	require.Len(t, grid, 5)
	assert.Equal(t, [7]int{0, 0, 0, 0, 1, 2, 3}, grid[0])
	assert.Equal(t, [7]int{4, 5, 6, 7, 8, 9, 10}, grid[1])
	assert.Equal(t, [7]int{25, 26, 27, 28, 29, 30, 31}, grid[4])
}

func TestPicker_MonthGrid_MondayStart(t *testing.T) {
	// April 2024 starts on a Monday, 30 days over exactly 5 rows
	date := "2024-04-01"
	p := New(StringField{S: &date}, fixedNow(t))
	p.Open()

	grid := p.MonthGrid()
	require.Len(t, grid, 5)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, grid[0])
	assert.Equal(t, [7]int{29, 30, 0, 0, 0, 0, 0}, grid[4])
}
