// Package slider implements the labeled range input that feeds the widget.
// Each Slider owns its value stream; two sliders never share state.
package slider

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/stream"
	"github.com/rileyhilliard/bmi/internal/view"
)

// Config describes one slider. It is fixed for the slider's lifetime.
type Config struct {
	// ID namespaces the slider's render nodes (e.g. "weight").
	ID      string
	Label   string
	Unit    string
	Min     float64
	Initial float64
	Max     float64
	// Step is the distance moved by one Increment. Defaults to 1.
	Step float64
}

// Validate checks min <= initial <= max and a positive step.
func (c Config) Validate() error {
	name := c.Label
	if name == "" {
		name = c.ID
	}

	for _, v := range []float64{c.Min, c.Initial, c.Max, c.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s slider has a non-finite bound", name),
				"Use plain numbers for min, initial, max and step.")
		}
	}
	if c.ID == "" {
		return errors.New(errors.ErrConfig,
			"Slider is missing an id",
			"Give each slider a unique id such as 'weight' or 'height'.")
	}
	if c.Min > c.Max {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s slider min %g is above max %g", name, c.Min, c.Max),
			"Swap the bounds so min <= max.")
	}
	if c.Initial < c.Min || c.Initial > c.Max {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s slider initial %g is outside [%g, %g]", name, c.Initial, c.Min, c.Max),
			"Keep min <= initial <= max.")
	}
	if c.Step < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s slider step %g is negative", name, c.Step),
			"Use a positive step, or leave it out for 1.")
	}
	return nil
}

// Slider is a range input with a latest-value stream.
type Slider struct {
	cfg     Config
	values  *stream.Value[float64]
	focused bool
}

// New validates cfg and creates a slider whose stream already holds
// cfg.Initial.
func New(cfg Config) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Step == 0 {
		cfg.Step = 1
	}
	return &Slider{
		cfg:    cfg,
		values: stream.NewValueOf(cfg.Initial),
	}, nil
}

// ID returns the slider's namespace.
func (s *Slider) ID() string { return s.cfg.ID }

// Config returns the slider's configuration with defaults applied.
func (s *Slider) Config() Config { return s.cfg }

// Values is the slider's value stream.
func (s *Slider) Values() *stream.Value[float64] { return s.values }

// Value returns the current position.
func (s *Slider) Value() float64 {
	v, _ := s.values.Get()
	return v
}

// Set moves the slider to v, clamped to [Min, Max], and publishes the result.
// Setting the current value again publishes nothing.
func (s *Slider) Set(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = s.clamp(v)
	if v == s.Value() {
		return
	}
	s.values.Set(v)
}

// Increment moves the slider by steps (negative to move down).
func (s *Slider) Increment(steps int) {
	s.Set(s.Value() + float64(steps)*s.cfg.Step)
}

// Decrement moves the slider down by steps.
func (s *Slider) Decrement(steps int) {
	s.Increment(-steps)
}

// Reset moves the slider back to its initial value.
func (s *Slider) Reset() {
	s.Set(s.cfg.Initial)
}

// SetFocused marks the slider as the one receiving keyboard input.
func (s *Slider) SetFocused(focused bool) { s.focused = focused }

// Focused reports whether the slider has keyboard focus.
func (s *Slider) Focused() bool { return s.focused }

// Close releases the value stream's subscribers.
func (s *Slider) Close() {
	s.values.Close()
}

// Node renders the slider: a label with the current value and unit, then a
// range input.
func (s *Slider) Node() view.Node {
	value := s.Value()
	focused := strconv.FormatBool(s.focused)

	label := view.Label(view.Text(s.cfg.Label)).
		Class("control-label").
		Attr("for", s.cfg.ID+"-input").
		Attr(view.AttrFocused, focused)
	readout := view.Span(view.Text(fmt.Sprintf(" %s %s", FormatValue(value), s.cfg.Unit))).
		Class("slider-value")
	input := view.El("input").
		Class("form-control").
		Attr("id", s.cfg.ID+"-input").
		Attr("type", "range").
		Attr("min", FormatValue(s.cfg.Min)).
		Attr("max", FormatValue(s.cfg.Max)).
		Attr("step", FormatValue(s.cfg.Step)).
		Attr("value", FormatValue(value)).
		Attr(view.AttrFocused, focused)

	return view.Div(label, readout, input).
		Class("form-group", "labeled-slider").
		Attr("id", s.cfg.ID)
}

// FormatValue prints v without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.cfg.Min, math.Min(s.cfg.Max, v))
}
