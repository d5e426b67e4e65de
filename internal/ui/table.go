package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is focused, so the selected row should look like any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
// Cells must be plain text; the table measures them without ANSI awareness.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// LegendRow is one category line of the legend table.
type LegendRow struct {
	Label string
	Range string
	// Color is the swatch fill as #RRGGBB.
	Color string
	// Marked rows get a pointer, e.g. the category of the current BMI.
	Marked bool
}

// RenderLegendTable renders a colored swatch, the category and its range
// per row.
func RenderLegendTable(rows []LegendRow) string {
	if len(rows) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	var b strings.Builder
	b.WriteString(headerStyle.Render("     " + padRight("CATEGORY", 20) + padRight("BMI", 12) + "COLOR"))
	b.WriteString("\n")

	for _, row := range rows {
		marker := "  "
		label := row.Label
		if row.Marked {
			marker = AccentStyle().Render(SymbolFocus) + " "
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Render(strings.Repeat(string(BarFilled), 2))

		b.WriteString(marker + swatch + " " +
			padRight(label, 20) +
			padRight(row.Range, 12) +
			MutedStyle().Render(row.Color))
		b.WriteString("\n")
	}
	return b.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
