package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain output so assertions can compare characters.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderText_InlineAndBlocks(t *testing.T) {
	tree := Div(
		H4(Text("BMI: 24.22 - normal")),
		Div(Text("powered by: "), A("https://example.com", "go"), Text(", "), A("https://example.org", "lipgloss")),
	)

	out := RenderText(tree, 40)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "BMI: 24.22 - normal", lines[0])
	assert.Equal(t, "powered by: go, lipgloss", lines[1])
}

func TestRenderText_Hr(t *testing.T) {
	assert.Equal(t, strings.Repeat("─", 12), RenderText(Hr(), 12))
}

func TestRenderText_ProgressCells(t *testing.T) {
	bar := Div(
		Div(Text("A")).CSS("width", "25%").CSS("background-color", "#8C1212"),
		Div(Text("B")).CSS("width", "75%").CSS("background-color", "#008000"),
	).Class(ClassProgress)

	out := RenderText(bar, 20)

	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Equal(t, "  A  "+"       B       ", out)
}

func TestRenderText_ProgressFillsRemainder(t *testing.T) {
	bar := Div(Div(Text("9")).CSS("width", "50%")).Class(ClassProgress)

	out := RenderText(bar, 10)

	assert.Equal(t, 10, lipgloss.Width(out))
	assert.True(t, strings.HasSuffix(out, "░░░░░"))
}

func TestRenderText_ProgressOverflowIsCut(t *testing.T) {
	bar := Div(Div(Text("71.42")).CSS("width", "212%")).Class(ClassProgress)

	assert.Equal(t, 10, lipgloss.Width(RenderText(bar, 10)))
}

func TestRenderText_NegativeWidthIsEmpty(t *testing.T) {
	bar := Div(Div(Text("9.07")).CSS("width", "-10.4%")).Class(ClassProgress)

	assert.Equal(t, strings.Repeat("░", 8), RenderText(bar, 8))
}

func TestRenderText_RangeInput(t *testing.T) {
	input := El("input").Attr("type", "range").Attr("min", "0").Attr("max", "10").Attr("value", "5")

	out := RenderText(input, 11)

	assert.Equal(t, 11, lipgloss.Width(out))
	assert.Equal(t, "━━━━━●─────", out)
}

func TestRenderText_FocusedLabel(t *testing.T) {
	label := Label(Text("Weight")).Attr(AttrFocused, "true")

	out := RenderText(Div(label), 20)

	assert.Equal(t, "▸ Weight", out)
}

func TestTermColor(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want lipgloss.Color
	}{
		{"rgba", "rgba(140, 18, 18, 1)", "#8c1212"},
		{"rgba drops alpha", "rgba(0, 128, 0, 0.5)", "#008000"},
		{"hex passes through", "#008000", "#008000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, termColor(tt.css))
		})
	}
}

func TestRenderText_ProgressRGBACell(t *testing.T) {
	bar := Div(Div(Text("24.22")).CSS("width", "50%").CSS("background-color", "rgba(0, 128, 0, 1)")).Class(ClassProgress)

	out := RenderText(bar, 10)

	assert.Equal(t, 10, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(out, "24.22"))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 42.5, percentOf("42.5%"))
	assert.Equal(t, 0.0, percentOf("-3%"))
	assert.Equal(t, 0.0, percentOf("wide"))
	assert.Equal(t, 0.0, percentOf(""))
}
