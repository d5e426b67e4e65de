package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar characters.
const (
	BarFilled  = '█'
	BarEmpty   = '░'
	TrackLine  = '━'
	TrackEmpty = '─'
)

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CellWidths splits width into cells proportional to the given percentages.
// Rounding error is carried forward so the cells add up to the rounded total
// of the percentages. Percentages past 100 in total are cut at width.
func CellWidths(percents []float64, width int) []int {
	cells := make([]int, len(percents))
	if width <= 0 {
		return cells
	}

	used := 0
	acc := 0.0
	for i, p := range percents {
		acc += p
		end := int(acc/100*float64(width) + 0.5)
		if end > width {
			end = width
		}
		if end < used {
			end = used
		}
		cells[i] = end - used
		used = end
	}
	return cells
}

// Track renders a slider track of the given width with a knob at fraction
// (0-1) of the way along. Focused tracks use the accent color.
func Track(fraction float64, width int, focused bool) string {
	if width < 1 {
		width = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	knob := int(fraction*float64(width-1) + 0.5)
	left := strings.Repeat(string(TrackLine), knob)
	right := strings.Repeat(string(TrackEmpty), width-1-knob)

	fill := lipgloss.NewStyle().Foreground(ColorSecondary)
	knobStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	if focused {
		fill = fill.Foreground(ColorAccent)
		knobStyle = knobStyle.Foreground(ColorAccent).Bold(true)
	}
	return fill.Render(left) + knobStyle.Render(SymbolKnob) + MutedStyle().Render(right)
}
