package config

import (
	"time"

	"github.com/rileyhilliard/bmi/internal/slider"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultDebounce is the quiet period before a new BMI is rendered.
const DefaultDebounce = 50 * time.Millisecond

// Config represents the complete .bmi.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version" json:"version"`
	Weight  SliderConfig `yaml:"weight" mapstructure:"weight" json:"weight"`
	Height  SliderConfig `yaml:"height" mapstructure:"height" json:"height"`

	// Debounce is a duration string such as "50ms".
	Debounce string       `yaml:"debounce" mapstructure:"debounce" json:"debounce"`
	Output   OutputConfig `yaml:"output" mapstructure:"output" json:"output"`
}

// SliderConfig configures one input slider.
type SliderConfig struct {
	Label   string  `yaml:"label" mapstructure:"label" json:"label"`
	Unit    string  `yaml:"unit" mapstructure:"unit" json:"unit"`
	Min     float64 `yaml:"min" mapstructure:"min" json:"min"`
	Initial float64 `yaml:"initial" mapstructure:"initial" json:"initial"`
	Max     float64 `yaml:"max" mapstructure:"max" json:"max"`
	Step    float64 `yaml:"step" mapstructure:"step" json:"step"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color" json:"color"`

	// Width of the rendered widget in columns. 0 fills the terminal.
	Width int `yaml:"width" mapstructure:"width" json:"width"`
}

// DefaultConfig returns a Config with the stock slider ranges.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Weight: SliderConfig{
			Label:   "Weight",
			Unit:    "kg",
			Min:     40,
			Initial: 70,
			Max:     140,
			Step:    1,
		},
		Height: SliderConfig{
			Label:   "Height",
			Unit:    "cm",
			Min:     140,
			Initial: 170,
			Max:     210,
			Step:    1,
		},
		Debounce: DefaultDebounce.String(),
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// DebounceDuration parses Debounce, falling back to DefaultDebounce.
func (c *Config) DebounceDuration() time.Duration {
	return parseDuration(c.Debounce, DefaultDebounce)
}

// WeightSlider converts the weight section into a slider config.
func (c *Config) WeightSlider() slider.Config {
	return c.Weight.toSlider("weight")
}

// HeightSlider converts the height section into a slider config.
func (c *Config) HeightSlider() slider.Config {
	return c.Height.toSlider("height")
}

func (s SliderConfig) toSlider(id string) slider.Config {
	return slider.Config{
		ID:      id,
		Label:   s.Label,
		Unit:    s.Unit,
		Min:     s.Min,
		Initial: s.Initial,
		Max:     s.Max,
		Step:    s.Step,
	}
}
