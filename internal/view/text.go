package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/bmi/internal/ui"
)

// Attribute and class names the terminal backend gives special treatment.
const (
	ClassProgress = "progress"
	AttrFocused   = "data-focused"
)

var inlineTags = map[string]bool{
	"a":      true,
	"span":   true,
	"strong": true,
	"em":     true,
	"label":  true,
}

var (
	h3Style   = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)
	h4Style   = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)
	linkStyle = lipgloss.NewStyle().Foreground(ui.ColorInfo).Underline(true)
	cellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Align(lipgloss.Center)
)

// RenderText draws n for a terminal of the given width. Elements with the
// "progress" class lay out their children as proportional cells using each
// child's width (percent) and background-color (hex or rgba()) styles; range inputs
// become slider tracks.
func RenderText(n Node, width int) string {
	if width < 1 {
		width = 1
	}
	return renderBlock(n, width)
}

func isInline(n Node) bool {
	return n.IsText() || inlineTags[n.Tag]
}

func renderBlock(n Node, width int) string {
	switch {
	case n.IsText():
		return n.Text
	case n.Tag == "hr":
		return ui.MutedStyle().Render(strings.Repeat("─", width))
	case n.Tag == "input" && n.Attrs["type"] == "range":
		return renderRange(n, width)
	case n.HasClass(ClassProgress):
		return renderProgress(n, width)
	}

	var lines []string
	var inline strings.Builder
	flush := func() {
		if inline.Len() > 0 {
			lines = append(lines, inline.String())
			inline.Reset()
		}
	}

	for _, c := range n.Children {
		if isInline(c) {
			inline.WriteString(renderInline(c))
			continue
		}
		flush()
		if out := renderBlock(c, width); out != "" {
			lines = append(lines, out)
		}
	}
	flush()

	out := strings.Join(lines, "\n")
	switch n.Tag {
	case "h3":
		out = h3Style.Render(out)
	case "h4":
		out = h4Style.Render(out)
	}
	return out
}

func renderInline(n Node) string {
	if n.IsText() {
		return n.Text
	}

	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(renderInline(c))
	}
	text := sb.String()

	switch {
	case n.Tag == "a":
		return linkStyle.Render(text)
	case n.Attrs[AttrFocused] == "true":
		return ui.AccentStyle().Render(ui.SymbolFocus + " " + text)
	case n.Tag == "strong":
		return lipgloss.NewStyle().Bold(true).Render(text)
	}
	return text
}

func renderRange(n Node, width int) string {
	lo := attrFloat(n, "min", 0)
	hi := attrFloat(n, "max", 100)
	val := attrFloat(n, "value", lo)

	fraction := 0.0
	if hi > lo {
		fraction = (val - lo) / (hi - lo)
	}
	return ui.Track(fraction, width, n.Attrs[AttrFocused] == "true")
}

func renderProgress(n Node, width int) string {
	percents := make([]float64, len(n.Children))
	for i, c := range n.Children {
		percents[i] = percentOf(c.Style["width"])
	}
	cells := ui.CellWidths(percents, width)

	var sb strings.Builder
	used := 0
	for i, c := range n.Children {
		cw := cells[i]
		if cw <= 0 {
			continue
		}
		style := cellStyle.Width(cw)
		if bg := c.Style["background-color"]; bg != "" {
			style = style.Background(termColor(bg))
		}
		sb.WriteString(style.Render(fit(c.TextContent(), cw)))
		used += cw
	}
	if used < width {
		sb.WriteString(lipgloss.NewStyle().Foreground(ui.ColorTrack).Render(strings.Repeat(string(ui.BarEmpty), width-used)))
	}
	return sb.String()
}

// termColor turns a CSS color, #rrggbb or rgba(r, g, b, a), into a terminal
// color. Terminals have no alpha, so it is dropped.
func termColor(css string) lipgloss.Color {
	var r, g, b, a float64
	if _, err := fmt.Sscanf(css, "rgba(%g, %g, %g, %g)", &r, &g, &b, &a); err == nil {
		return lipgloss.Color(colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped().Hex())
	}
	return lipgloss.Color(css)
}

// percentOf parses "42.5%" into 42.5. Negative or malformed widths are 0.
func percentOf(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func attrFloat(n Node, key string, def float64) float64 {
	v, err := strconv.ParseFloat(n.Attrs[key], 64)
	if err != nil {
		return def
	}
	return v
}

// fit drops text that would wrap inside a cell.
func fit(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}
