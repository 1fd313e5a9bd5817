package workout

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"fittrack/internal/datepicker"
)

// pickDate drives the calendar picker over a line-oriented prompt and
// returns the chosen ISO date. The picker owns all the date logic;
// this just draws its state and feeds it commands.
func pickDate(initial string, in io.Reader, out io.Writer) string {
	date := initial
	p := datepicker.New(datepicker.StringField{S: &date}, time.Now)
	p.Open()

	scanner := bufio.NewScanner(in)
	for p.IsOpen() {
		drawCalendar(out, p)
		fmt.Fprint(out, "[n]ext month, [p]rev month, day number, [t]oday, [d]one: ")
		if !scanner.Scan() {
			p.Done()
			break
		}

		switch input := strings.TrimSpace(scanner.Text()); input {
		case "n":
			p.NextMonth()
		case "p":
			p.PrevMonth()
		case "t":
			p.PickToday()
		case "d", "":
			p.Done()
		default:
			day, err := strconv.Atoi(input)
			if err != nil || day < 1 {
				fmt.Fprintln(out, "Enter a day number or one of n/p/t/d")
				continue
			}
			p.Pick(day)
		}
	}
	return date
}

func drawCalendar(out io.Writer, p *datepicker.Picker) {
	header := time.Date(p.Year(), p.Month(), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	fmt.Fprintf(out, "\n      %s\n", header)
	fmt.Fprintln(out, " Mon Tue Wed Thu Fri Sat Sun")

	selected := p.Selected()
	highlight := color.New(color.FgWhite, color.BgBlue)

	for _, week := range p.MonthGrid() {
		for _, day := range week {
			if day == 0 {
				fmt.Fprint(out, "    ")
				continue
			}
			isSelected := selected.Year() == p.Year() &&
				selected.Month() == p.Month() &&
				selected.Day() == day
			if isSelected {
				fmt.Fprint(out, " ")
				highlight.Fprintf(out, "%3d", day)
			} else {
				fmt.Fprintf(out, " %3d", day)
			}
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Selected: %s\n", date(selected))
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}
