package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/bmi/internal/ui"
)

// Layout bounds for the widget column.
const (
	DefaultWidth = 60
	MinWidth     = 24
	MaxWidth     = 100
)

const trendLabel = "Trend "

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccent).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary).
			Italic(true)

	readoutStyle = lipgloss.NewStyle().Bold(true)

	frameStyle = lipgloss.NewStyle().Padding(1, 2)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorAccent).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccent).
			Bold(true).
			MarginBottom(1)
)
