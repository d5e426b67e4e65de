package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/presenter"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/rileyhilliard/bmi/internal/view"
)

// LegendEntry is one category in 'bmi legend --json'.
type LegendEntry struct {
	Category bmi.Category `json:"category"`
	Label    string       `json:"label"`
	Range    string       `json:"range"`
	Min      float64      `json:"min"`
	Max      float64      `json:"max,omitempty"`
	Color    string       `json:"color"`
}

// legendEntries lists every category in ascending order. Obese III has no
// legend cell and takes the color of the far end of the live bar.
func legendEntries() []LegendEntry {
	entries := make([]LegendEntry, 0, len(bmi.Segments)+1)
	for _, s := range bmi.Segments {
		min := s.Min
		if min <= bmi.AxisMin {
			min = 0
		}
		entries = append(entries, LegendEntry{
			Category: s.Category,
			Label:    s.Category.Label(),
			Range:    s.Range(),
			Min:      min,
			Max:      s.Max,
			Color:    s.Color,
		})
	}
	entries = append(entries, LegendEntry{
		Category: bmi.Obese3,
		Label:    bmi.Obese3.Label(),
		Range:    bmi.RangeOf(bmi.Obese3),
		Min:      bmi.Obese2Max,
		Color:    presenter.ColorForBmi(bmi.Obese2Max).Hex(),
	})
	return entries
}

// runLegend prints the legend bar and the category table. mark highlights
// one category (Undefined for none).
func runLegend(w io.Writer, jsonOut bool, width int, mark bmi.Category) error {
	entries := legendEntries()
	if jsonOut {
		return WriteJSONSuccess(w, entries)
	}

	rows := make([]ui.LegendRow, len(entries))
	for i, e := range entries {
		rows[i] = ui.LegendRow{
			Label:  e.Label,
			Range:  e.Range,
			Color:  e.Color,
			Marked: mark != bmi.Undefined && e.Category == mark,
		}
	}

	fmt.Fprintln(w, view.RenderText(presenter.Legend(), width))
	fmt.Fprintln(w)
	fmt.Fprint(w, ui.RenderLegendTable(rows))
	return nil
}
