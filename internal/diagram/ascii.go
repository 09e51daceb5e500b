package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotOptions sizes a terminal plot.
type PlotOptions struct {
	Height int
	Width  int
}

// ASCIIShear draws the combined shear force diagram.
func ASCIIShear(d Diagrams, title string, opts PlotOptions) string {
	return plotSeries(title+" - Shear Force", d.Shear.Total, d.MaxShear, opts)
}

// ASCIIMoment draws the combined bending moment diagram (sagging up).
func ASCIIMoment(d Diagrams, title string, opts PlotOptions) string {
	return plotSeries(title+" - Bending Moment", d.Moment.Total, d.MaxMoment, opts)
}

// ASCIIAxial draws the axial force diagram (tension up).
func ASCIIAxial(d Diagrams, title string, opts PlotOptions) string {
	return plotSeries(title+" - Axial Force", d.Axial, peak(d.X, d.Axial), opts)
}

func plotSeries(caption string, values []float64, p Peak, opts PlotOptions) string {
	if len(values) == 0 {
		return ""
	}
	if opts.Height <= 0 {
		opts.Height = 10
	}
	if opts.Width <= 0 {
		opts.Width = 60
	}

	zero := make([]float64, len(values))
	graph := asciigraph.PlotMany([][]float64{values, zero},
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s (peak %.3f at x = %.3f)", caption, p.Value, p.X)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s to width runes; %-*s counts bytes and misaligns "²".
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
