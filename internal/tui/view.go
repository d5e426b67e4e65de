package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/bmi/internal/presenter"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/rileyhilliard/bmi/internal/view"
)

// View renders the widget.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return frameStyle.Render(m.renderWidget())
}

func (m Model) renderWidget() string {
	width := m.contentWidth()
	rule := ui.MutedStyle().Render(strings.Repeat("─", width))

	sections := []string{
		titleStyle.Render(presenter.Title),
		subtitleStyle.Width(width).Render(presenter.Description),
		rule,
		view.RenderText(m.widget.Weight().Node(), width),
		view.RenderText(m.widget.Height().Node(), width),
		rule,
		m.renderReadout(),
		m.bar.ViewAs(barPercent(m.record)),
		m.renderTrend(width),
		view.RenderText(presenter.Legend(), width),
		rule,
	}

	if m.reloadErr != nil {
		sections = append(sections, ui.WarningStyle().Render(ui.SymbolWarning+" config reload failed, keeping previous settings"))
	}
	sections = append(sections, m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderReadout() string {
	text := presenter.Readout(m.record)
	if m.stale() {
		return ui.MutedStyle().Render(text)
	}
	color := lipgloss.Color(presenter.ColorForBmi(m.record.BMI).Hex())
	return readoutStyle.Foreground(color).Render(text)
}

// stale reports whether the readout trails the sliders: nothing has settled
// yet, or a newer record is waiting out the debounce window.
func (m Model) stale() bool {
	return !m.settled || !m.record.Valid() || m.widget.Pending()
}

// renderTrend draws the settled readings of this session. Nothing is shown
// until there are two points to compare.
func (m Model) renderTrend(width int) string {
	if m.trend.len() < 2 {
		return ""
	}
	label := ui.MutedStyle().Render(trendLabel)
	var color lipgloss.TerminalColor
	if m.record.Valid() {
		color = lipgloss.Color(presenter.ColorForBmi(m.record.BMI).Hex())
	}
	return label + ui.RenderSparkline(m.trend.values(), width-len(trendLabel), color)
}

// renderHelpOverlay centers the full key list on screen.
func (m Model) renderHelpOverlay() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Keyboard Shortcuts"),
		m.help.View(keys),
		"",
		ui.MutedStyle().Render("Press ? to close"),
	)
	box := helpBoxStyle.Render(content)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
