package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/slider"
	"github.com/rileyhilliard/bmi/internal/ui"
)

// printConfig shows where the config came from and the effective sliders.
func printConfig(w io.Writer, cfg *config.Config, path string) {
	source := path
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(w, "%s %s\n\n", ui.MutedStyle().Render("config:"), source)

	columns := []ui.TableColumn{
		{Title: "Slider", Width: 10},
		{Title: "Unit", Width: 6},
		{Title: "Min", Width: 7},
		{Title: "Initial", Width: 8},
		{Title: "Max", Width: 7},
		{Title: "Step", Width: 6},
	}
	rows := [][]string{
		sliderRow(cfg.Weight),
		sliderRow(cfg.Height),
	}
	fmt.Fprintln(w, ui.RenderSimpleTable(columns, rows))

	fmt.Fprintf(w, "\n%s %s\n", ui.MutedStyle().Render("debounce:"), cfg.DebounceDuration())
	fmt.Fprintf(w, "%s %s\n", ui.MutedStyle().Render("color:"), cfg.Output.Color)
}

func sliderRow(s config.SliderConfig) []string {
	return []string{
		s.Label,
		s.Unit,
		slider.FormatValue(s.Min),
		slider.FormatValue(s.Initial),
		slider.FormatValue(s.Max),
		slider.FormatValue(s.Step),
	}
}
