// Package presenter turns a derived BMI record into colors, bar geometry and
// the widget's render tree.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/view"
)

// Title is the widget heading; Description is shown as its tooltip.
const (
	Title       = "Body Mass Index"
	Description = "Body Mass Index (BMI) is an international measure used to estimate whether a " +
		"person's weight is healthy for their height. It was devised by the polymath Adolphe " +
		"Quetelet in the 19th century and is used by the World Health Organization as an " +
		"indicator of obesity. (source: wikipedia)"
)

// FooterLinks are the attribution links rendered under the legend.
var FooterLinks = []struct {
	Text string
	Href string
}{
	{"Bubble Tea", "https://github.com/charmbracelet/bubbletea"},
	{"Lip Gloss", "https://github.com/charmbracelet/lipgloss"},
	{"Cobra", "https://github.com/spf13/cobra"},
}

// Readout is the one-line summary, e.g. "BMI: 24.22 - normal".
func Readout(rec bmi.Record) string {
	if !rec.Valid() {
		return "BMI: n/a - " + rec.Category.Label()
	}
	return fmt.Sprintf("BMI: %s - %s", FormatNumber(rec.Rounded), rec.Category.Label())
}

// LiveBar is the proportional bar colored by ColorForBmi.
func LiveBar(rec bmi.Record) view.Node {
	bar := view.Div().Class("progress-bar")
	if !rec.Valid() {
		return view.Div(bar.CSS("width", "0%")).Class(view.ClassProgress)
	}

	label := FormatNumber(rec.Rounded)
	bar = bar.
		CSS("width", FormatPercent(IndicatorWidth(rec.BMI))).
		CSS("background-color", ColorForBmi(rec.BMI).CSS()).
		Attr("title", "BMI: "+label).
		With(view.Text(label))
	return view.Div(bar).Class(view.ClassProgress)
}

// Legend is the static bar of category cells with hover tooltips.
func Legend() view.Node {
	cells := make([]view.Node, 0, len(bmi.Segments))
	for _, s := range bmi.Segments {
		cells = append(cells, segmentCell(s))
	}
	return view.Div(cells...).Class(view.ClassProgress, "legend")
}

func segmentCell(s bmi.Segment) view.Node {
	return view.Div(view.Text(s.Range())).
		Class("legend-segment").
		Attr("title", s.Tooltip()).
		CSS("height", "100%").
		CSS("line-height", "20px").
		CSS("float", "left").
		CSS("text-align", "center").
		CSS("color", "#fff").
		CSS("font-size", "12px").
		CSS("width", FormatPercent(SegmentWidth(s))).
		CSS("background-color", s.Color)
}

// Footer is the attribution line.
func Footer() view.Node {
	footer := view.Div(view.Text("powered by: ")).Class("footer")
	for i, link := range FooterLinks {
		if i > 0 {
			footer = footer.With(view.Text(", "))
		}
		footer = footer.With(view.A(link.Href, link.Text))
	}
	return footer
}

// Tree composes the full widget from the two slider nodes and the latest
// settled record.
func Tree(weight, height view.Node, rec bmi.Record) view.Node {
	column := view.Div(
		view.Form(weight, view.Hr(), height).Class("form-horizontal"),
		view.Hr(),
		view.H4(view.Text(Readout(rec))).Class("readout"),
		view.Hr(),
		LiveBar(rec),
		Legend(),
		Footer(),
	).Class("col-md-6", "col-xs-12")

	return view.Div(
		view.H3(view.Text(Title)).Attr("title", Description),
		view.Hr(),
		view.Div(column).Class("row"),
	).Class("container")
}

// FormatNumber prints v with no trailing zeros, as the readout shows it.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent prints a CSS percentage.
func FormatPercent(v float64) string {
	return FormatNumber(v) + "%"
}
