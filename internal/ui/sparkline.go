package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws the most recent width values as a one-line chart,
// scaled between the smallest and largest value shown. The whole line is
// drawn in color; pass nil for the muted color.
func RenderSparkline(data []float64, width int, color lipgloss.TerminalColor) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		sb.WriteRune(sparklineBlockRunes[sparklineLevel(v, minVal, valueRange, numLevels)])
	}

	if color == nil {
		color = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

func sparklineLevel(v, minVal, valueRange float64, numLevels int) int {
	if valueRange == 0 {
		// Flat line sits in the middle.
		return numLevels / 2
	}
	level := int((v - minVal) / valueRange * float64(numLevels-1))
	if level < 0 {
		return 0
	}
	if level >= numLevels {
		return numLevels - 1
	}
	return level
}
