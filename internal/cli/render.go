package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/slider"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/rileyhilliard/bmi/internal/view"
	"github.com/rileyhilliard/bmi/internal/widget"
	"github.com/spf13/cobra"
)

// Output formats for 'bmi render'.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// renderOptions holds the inputs for a static render. A nil Weight or
// Height keeps the configured initial value.
type renderOptions struct {
	Weight *float64
	Height *float64
	Format string
	Width  int
}

func renderCommand(cmd *cobra.Command, weight, height float64, format string, width int) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	opts := renderOptions{Format: format, Width: width}
	if cmd.Flags().Changed("weight") {
		opts.Weight = &weight
	}
	if cmd.Flags().Changed("height") {
		opts.Height = &height
	}
	if opts.Width <= 0 {
		opts.Width = outputWidth(cfg)
	}

	return runRender(cmd.OutOrStdout(), cfg, opts)
}

// runRender builds the widget, settles it and writes the composite tree.
func runRender(w io.Writer, cfg *config.Config, opts renderOptions) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatHTML {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Unknown format '%s'", opts.Format),
			"Use --format text or --format html.")
	}

	wd, err := widget.New(cfg, widget.WithLogger(cliLog))
	if err != nil {
		return err
	}
	defer wd.Close()

	if opts.Weight != nil {
		setReportingClamp(wd.Weight(), *opts.Weight)
	}
	if opts.Height != nil {
		setReportingClamp(wd.Height(), *opts.Height)
	}
	wd.Settle()
	tree := wd.Tree()

	if format == FormatHTML {
		if err := view.RenderHTML(w, tree); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	_, err = fmt.Fprintln(w, view.RenderText(tree, opts.Width))
	return err
}

// setReportingClamp moves s to v and warns when the slider range clipped it.
func setReportingClamp(s *slider.Slider, v float64) {
	s.Set(v)
	if got := s.Value(); got != v {
		cfg := s.Config()
		ui.PrintWarning(fmt.Sprintf("%s %s is outside [%s, %s], using %s",
			cfg.Label, slider.FormatValue(v),
			slider.FormatValue(cfg.Min), slider.FormatValue(cfg.Max),
			slider.FormatValue(got)))
	}
}
