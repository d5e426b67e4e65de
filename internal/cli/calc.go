package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/presenter"
	"github.com/rileyhilliard/bmi/internal/slider"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/rileyhilliard/bmi/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CalcResult is the --json payload of 'bmi calc'.
type CalcResult struct {
	Weight         float64      `json:"weight"`
	Height         float64      `json:"height"`
	BMI            float64      `json:"bmi"`
	Rounded        float64      `json:"rounded_bmi"`
	Category       bmi.Category `json:"category"`
	Label          string       `json:"label"`
	Range          string       `json:"range"`
	Color          string       `json:"color"`
	IndicatorWidth float64      `json:"indicator_width"`
}

// calcOptions holds the resolved inputs for calc.
type calcOptions struct {
	Weight      float64
	Height      float64
	JSON        bool
	Interactive bool
	Width       int
}

func calcCommand(cmd *cobra.Command, opts calcOptions) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return reportError(cmd.OutOrStdout(), opts.JSON, err)
	}

	if !cmd.Flags().Changed("weight") {
		opts.Weight = cfg.Weight.Initial
	}
	if !cmd.Flags().Changed("height") {
		opts.Height = cfg.Height.Initial
	}

	if opts.Interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return reportError(cmd.OutOrStdout(), opts.JSON, errors.New(errors.ErrInput,
				"--interactive needs a terminal",
				"Pass --weight and --height instead."))
		}
		if err := promptMeasurements(cfg, &opts); err != nil {
			return err
		}
	}

	if opts.Width <= 0 {
		opts.Width = outputWidth(cfg)
	}
	return runCalc(cmd.OutOrStdout(), opts)
}

// runCalc derives the record and prints it.
func runCalc(w io.Writer, opts calcOptions) error {
	result, err := calculate(opts.Weight, opts.Height)
	if err != nil {
		return reportError(w, opts.JSON, err)
	}

	if opts.JSON {
		return WriteJSONSuccess(w, result)
	}

	rec := bmi.Derive(opts.Weight, opts.Height)
	readout := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(result.Color)).Render(presenter.Readout(rec))

	fmt.Fprintln(w, readout)
	fmt.Fprintln(w, view.RenderText(presenter.LiveBar(rec), opts.Width))
	fmt.Fprintln(w, view.RenderText(presenter.Legend(), opts.Width))
	fmt.Fprintln(w, ui.MutedStyle().Render(fmt.Sprintf("range %s  color %s", result.Range, result.Color)))
	return nil
}

// calculate validates the inputs and fills a CalcResult.
func calculate(weight, height float64) (CalcResult, error) {
	if !(weight > 0) || math.IsInf(weight, 0) {
		return CalcResult{}, errors.New(errors.ErrInput,
			fmt.Sprintf("Weight must be a positive number, got %s", slider.FormatValue(weight)),
			"Pass --weight in kilograms, e.g. --weight 70")
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return CalcResult{}, errors.New(errors.ErrInput,
			fmt.Sprintf("Height must be a positive number, got %s", slider.FormatValue(height)),
			"Pass --height in centimeters, e.g. --height 170")
	}

	rec := bmi.Derive(weight, height)
	if !rec.Valid() {
		return CalcResult{}, errors.New(errors.ErrInput,
			"Couldn't derive a BMI from those numbers",
			"Check --weight and --height are ordinary positive numbers.")
	}

	return CalcResult{
		Weight:         weight,
		Height:         height,
		BMI:            rec.BMI,
		Rounded:        rec.Rounded,
		Category:       rec.Category,
		Label:          rec.Category.Label(),
		Range:          bmi.RangeOf(rec.Category),
		Color:          presenter.ColorForBmi(rec.BMI).Hex(),
		IndicatorWidth: presenter.IndicatorWidth(rec.BMI),
	}, nil
}

// promptMeasurements asks for weight and height, prefilled with the current
// values.
func promptMeasurements(cfg *config.Config, opts *calcOptions) error {
	weight := slider.FormatValue(opts.Weight)
	height := slider.FormatValue(opts.Height)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s (%s)", cfg.Weight.Label, cfg.Weight.Unit)).
				Description("Your body weight").
				Placeholder(slider.FormatValue(cfg.Weight.Initial)).
				Value(&weight).
				Validate(validatePositive),
			huh.NewInput().
				Title(fmt.Sprintf("%s (%s)", cfg.Height.Label, cfg.Height.Unit)).
				Description("Your height").
				Placeholder(slider.FormatValue(cfg.Height.Initial)).
				Value(&height).
				Validate(validatePositive),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Prompt cancelled",
			"Pass --weight and --height to skip the prompt.")
	}

	// Both already passed validatePositive.
	opts.Weight, _ = parseMeasurement(weight)
	opts.Height, _ = parseMeasurement(height)
	return nil
}

func validatePositive(s string) error {
	v, err := parseMeasurement(s)
	if err != nil {
		return err
	}
	if !(v > 0) {
		return fmt.Errorf("must be above zero")
	}
	return nil
}

func parseMeasurement(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("enter a number")
	}
	return v, nil
}

// outputWidth picks the render width: output.width, else the terminal,
// capped for readability.
func outputWidth(cfg *config.Config) int {
	if cfg.Output.Width > 0 {
		return cfg.Output.Width
	}
	w := terminalWidth(defaultRenderWidth)
	if w > maxRenderWidth {
		w = maxRenderWidth
	}
	return w
}
