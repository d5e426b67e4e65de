package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadout(t *testing.T) {
	assert.Equal(t, "BMI: 24.22 - normal", Readout(bmi.Derive(70, 170)))
	assert.Equal(t, "BMI: 71.42 - obese III", Readout(bmi.Derive(140, 140)))
	assert.Equal(t, "BMI: 9.07 - severe underweight", Readout(bmi.Derive(40, 210)))
	assert.Equal(t, "BMI: n/a - undefined", Readout(bmi.Derive(70, 0)))
}

func TestLiveBar(t *testing.T) {
	rec := bmi.Derive(90, 180)
	bar := LiveBar(rec)

	require.True(t, bar.HasClass(view.ClassProgress))
	require.Len(t, bar.Children, 1)
	inner := bar.Children[0]

	assert.Equal(t, "27.77", inner.TextContent())
	assert.Equal(t, "BMI: 27.77", inner.Attrs["title"])
	assert.Equal(t, ColorForBmi(rec.BMI).CSS(), inner.Style["background-color"])
	assert.True(t, strings.HasPrefix(inner.Style["background-color"], "rgba("))
	assert.Equal(t, FormatPercent(IndicatorWidth(rec.BMI)), inner.Style["width"])
}

func TestLiveBar_Undefined(t *testing.T) {
	bar := LiveBar(bmi.Record{Category: bmi.Undefined})

	inner := bar.Children[0]
	assert.Equal(t, "0%", inner.Style["width"])
	assert.NotContains(t, inner.Style, "background-color")
	assert.Empty(t, inner.TextContent())
}

func TestLegend(t *testing.T) {
	legend := Legend()

	cells := legend.ByClass("legend-segment")
	require.Len(t, cells, len(bmi.Segments))

	assert.Equal(t, "< 15", cells[0].TextContent())
	assert.Equal(t, "severe underweight (< 15)", cells[0].Attrs["title"])
	assert.Equal(t, "35 - 40", cells[5].TextContent())
	assert.Equal(t, "obese II (35 - 40)", cells[5].Attrs["title"])
	assert.Equal(t, "#008000", cells[2].Style["background-color"])
}

func TestFooter(t *testing.T) {
	footer := Footer()

	links := footer.FindAll(func(n view.Node) bool { return n.Tag == "a" })
	require.Len(t, links, len(FooterLinks))
	assert.Equal(t, "powered by: Bubble Tea, Lip Gloss, Cobra", footer.TextContent())
}

func TestTree(t *testing.T) {
	weight := view.Div(view.Text("weight-slider")).Attr("id", "weight")
	height := view.Div(view.Text("height-slider")).Attr("id", "height")

	tree := Tree(weight, height, bmi.Derive(70, 170))

	assert.True(t, tree.HasClass("container"))
	assert.Equal(t, Title, tree.Children[0].TextContent())
	assert.Equal(t, Description, tree.Children[0].Attrs["title"])

	readout := tree.ByClass("readout")
	require.Len(t, readout, 1)
	assert.Equal(t, "BMI: 24.22 - normal", readout[0].TextContent())

	ids := tree.FindAll(func(n view.Node) bool { return n.Attrs["id"] != "" })
	require.Len(t, ids, 2)
	assert.Equal(t, "weight", ids[0].Attrs["id"])
	assert.Equal(t, "height", ids[1].Attrs["id"])

	assert.Len(t, tree.ByClass(view.ClassProgress), 2)

	var buf bytes.Buffer
	require.NoError(t, view.RenderHTML(&buf, tree))
	assert.Contains(t, buf.String(), `title="obese II (35 - 40)"`)
	assert.Contains(t, buf.String(), "background-color: "+ColorForBmi(bmi.Derive(70, 170).BMI).CSS())
}
