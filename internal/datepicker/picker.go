// Package datepicker is the calendar selection state machine behind
// the date field. It knows nothing about rendering; the UI draws
// whatever state it exposes.
package datepicker

import (
	"time"

	"fittrack/internal/model"
)

// Field is the text field the picker is bound to. Picks write the
// selected date back as its ISO string immediately.
type Field interface {
	Text() string
	SetText(s string)
}

// StringField binds the picker to a plain string variable.
type StringField struct {
	S *string
}

func (f StringField) Text() string     { return *f.S }
func (f StringField) SetText(s string) { *f.S = s }

type Picker struct {
	field    Field
	year     int
	month    time.Month
	selected time.Time
	open     bool
	now      func() time.Time
}

// New builds a closed picker bound to field. The now func supplies
// "today" for initialization and PickToday.
func New(field Field, now func() time.Time) *Picker {
	if now == nil {
		now = time.Now
	}
	return &Picker{field: field, now: now}
}

// Open (re)initializes from the bound field's current text: the
// displayed month is the month of that date, the selection is that
// date. Unparseable text falls back to today. The picker is
// re-entrant; closing and reopening always re-reads the field.
func (p *Picker) Open() {
	date, err := time.Parse(model.DateLayout, p.field.Text())
	if err != nil {
		date = p.now()
	}
	p.selected = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	p.year = date.Year()
	p.month = date.Month()
	p.open = true
}

func (p *Picker) IsOpen() bool { return p.open }

func (p *Picker) Year() int { return p.year }

func (p *Picker) Month() time.Month { return p.month }

func (p *Picker) Selected() time.Time { return p.selected }

// NextMonth advances the displayed month, December wrapping into
// January of the next year. The selection does not move.
func (p *Picker) NextMonth() {
	if p.month == time.December {
		p.month = time.January
		p.year++
		return
	}
	p.month++
}

// PrevMonth steps back, January wrapping into December of the
// previous year.
func (p *Picker) PrevMonth() {
	if p.month == time.January {
		p.month = time.December
		p.year--
		return
	}
	p.month--
}

// Pick selects a day of the displayed month and writes it back to the
// bound field. The picker stays open.
func (p *Picker) Pick(day int) {
	p.selected = time.Date(p.year, p.month, day, 0, 0, 0, 0, time.UTC)
	p.field.SetText(p.selected.Format(model.DateLayout))
}

// PickToday selects today, writes it back and closes in one step.
func (p *Picker) PickToday() {
	today := p.now()
	p.selected = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	p.field.SetText(p.selected.Format(model.DateLayout))
	p.open = false
}

// Done closes the picker without further mutation. Cancel behaves the
// same way; the last Pick already wrote through.
func (p *Picker) Done() { p.open = false }

// MonthGrid lays the displayed month out Monday-first, one row per
// week, zero for cells outside the month.
func (p *Picker) MonthGrid() [][7]int {
	first := time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) + 6) % 7
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var grid [][7]int
	week := [7]int{}
	col := lead
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			grid = append(grid, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, week)
	}
	return grid
}
