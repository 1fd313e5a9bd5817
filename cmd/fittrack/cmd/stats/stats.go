package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fittrack/internal/domain/stats"
)

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Workout statistics and charts",
}

const maxBarWidth = 40

// drawBars renders a horizontal bar chart, one row per point, scaled
// so the largest value fills maxBarWidth cells.
func drawBars(out io.Writer, points []stats.Point, unit string) {
	max := 0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	bar := color.New(color.FgCyan)
	for _, p := range points {
		width := 0
		if max > 0 {
			width = p.Value * maxBarWidth / max
		}
		fmt.Fprintf(out, "%-10s ", p.Label)
		bar.Fprint(out, strings.Repeat("█", width))
		fmt.Fprintf(out, " %d %s\n", p.Value, unit)
	}
}
