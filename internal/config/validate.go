package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/bmi/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but bmi only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest bmi release.")
	}

	// Slider errors already carry ErrConfig and a suggestion.
	if err := cfg.WeightSlider().Validate(); err != nil {
		return err
	}
	if err := cfg.HeightSlider().Validate(); err != nil {
		return err
	}

	for _, sc := range []struct {
		name string
		s    SliderConfig
	}{{"weight", cfg.Weight}, {"height", cfg.Height}} {
		if sc.s.Step <= 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s.step must be positive, got %g", sc.name, sc.s.Step),
				"Use a step like 1 or 0.5.")
		}
	}
	if cfg.Weight.Min < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Weight min can't be negative, got %g", cfg.Weight.Min),
			"Set weight.min to zero or more.")
	}

	// BMI divides by height squared; zero height is never a usable input.
	if cfg.Height.Min <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Height min must be above zero, got %g", cfg.Height.Min),
			"Set height.min to a positive number of centimeters.")
	}

	if err := validateDebounce(cfg.Debounce); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Use a duration like '50ms' for debounce.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'output' section in your .bmi.yaml.")
	}

	return nil
}

func validateDebounce(s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("debounce %q isn't a valid duration", s)
	}
	if d < 0 {
		return fmt.Errorf("debounce can't be negative, got %s", s)
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[strings.ToLower(out.Color)] {
		return fmt.Errorf("output.color '%s' isn't valid - use auto, always, or never", out.Color)
	}
	if out.Width < 0 {
		return fmt.Errorf("output.width can't be negative, got %d", out.Width)
	}
	return nil
}
