package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/varkas/amptop/internal/history"
	"codeberg.org/varkas/amptop/internal/plot"
)

const chartTitle = "Battery History (Green: Charging | Red: Discharging | Blue: Full)"

// yAxisWidth holds the "100% " gutter to the left of the chart body.
const yAxisWidth = 5

func (m *Model) chartView(width, height int) string {
	title := titleStyle.Render(chartTitle)

	if m.histErr != nil {
		return panelStyle.Width(width).Height(height).Render(
			title + "\n" + errStyle.Render("Error loading data: "+m.histErr.Error()))
	}

	innerW := width - 4 - yAxisWidth
	innerH := height - 4
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 3 {
		innerH = 3
	}

	// Query returns newest-first; the chart reads left to right in time.
	series, ok := plot.Downsample(reversed(m.snapshots), innerW)
	if !ok {
		hint := warnStyle.Render("No historical data available") + "\n\n" +
			mutedStyle.Render("Start the daemon to collect data:\namptop daemon start --interval 60")
		return panelStyle.Width(width).Height(height).Render(title + "\n" + hint)
	}

	body := renderColumns(chartColumns(series, innerW, innerH), innerW, innerH, stateStyle(series.State))

	axis := mutedStyle.Render(
		strings.Repeat(" ", yAxisWidth) +
			padBetween(
				time.Unix(series.First, 0).Format("15:04"),
				time.Unix(series.Last, 0).Format("15:04"),
				innerW,
			))

	return panelStyle.Width(width).Render(title + "\n" + body + "\n" + axis)
}

// chartColumns projects the series onto a width-column grid, returning the
// bar height (0..height) for each column.
func chartColumns(series *plot.Series, width, height int) []int {
	cols := make([]int, width)
	for _, p := range series.Points {
		col := int(p.X/4.0*float64(width-1) + 0.5)
		if col < 0 || col >= width {
			continue
		}
		h := int(p.Y/100*float64(height) + 0.5)
		if h > height {
			h = height
		}
		if h < 1 && p.Y > 0 {
			h = 1
		}
		cols[col] = h
	}

	return cols
}

func renderColumns(cols []int, width, height int, style lipgloss.Style) string {
	var b strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			b.WriteString("\n")
		}

		threshold := height - row
		var label string
		switch row {
		case 0:
			label = "100% "
		case height - 1:
			label = "  0% "
		default:
			label = strings.Repeat(" ", yAxisWidth)
		}
		b.WriteString(mutedStyle.Render(label))

		var line strings.Builder
		for col := 0; col < width; col++ {
			if cols[col] >= threshold {
				line.WriteString("█")
			} else {
				line.WriteString(" ")
			}
		}
		b.WriteString(style.Render(line.String()))
	}

	return b.String()
}

func stateStyle(state plot.Dominant) lipgloss.Style {
	switch state {
	case plot.DominantCharging:
		return chargingStyle
	case plot.DominantDischarging:
		return dischargingStyle
	case plot.DominantFull:
		return fullStyle
	default:
		return idleStyle
	}
}

func reversed(snapshots []history.Snapshot) []history.Snapshot {
	out := make([]history.Snapshot, len(snapshots))
	for i, s := range snapshots {
		out[len(snapshots)-1-i] = s
	}

	return out
}

// padBetween left-aligns a and right-aligns b inside width columns.
func padBetween(a, b string, width int) string {
	gap := width - len(a) - len(b)
	if gap < 1 {
		gap = 1
	}

	return a + strings.Repeat(" ", gap) + b
}
