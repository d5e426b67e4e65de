// Package scale interpolates colors piecewise-linearly across a set of color
// stops laid out on a numeric domain.
package scale

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/bmi/internal/errors"
)

// RGBA is a color with 0-255 RGB channels and a 0-1 alpha channel.
type RGBA struct {
	R, G, B, A float64
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped().Hex()
}

// CSS returns the color as an rgba() expression.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Stop anchors a color at a normalized position in [0, 1].
type Stop struct {
	Color    RGBA
	Position float64
}

// Scale maps a domain onto its stops. Build one with New.
type Scale struct {
	stops  []Stop
	domain [2]float64
}

// New validates the stops and domain. Malformed input is a configuration
// error and is reported here rather than when colors are looked up.
func New(stops []Stop, domainMin, domainMax float64) (*Scale, error) {
	if len(stops) < 2 {
		return nil, errors.New(errors.ErrScale,
			fmt.Sprintf("A color scale needs at least 2 stops, got %d", len(stops)),
			"Add a stop at position 0 and one at position 1.")
	}
	if !(domainMax > domainMin) {
		return nil, errors.New(errors.ErrScale,
			fmt.Sprintf("Color scale domain [%g, %g] is empty", domainMin, domainMax),
			"The domain max must be greater than the domain min.")
	}

	for i, s := range stops {
		if s.Position < 0 || s.Position > 1 || math.IsNaN(s.Position) {
			return nil, errors.New(errors.ErrScale,
				fmt.Sprintf("Stop %d has position %g outside [0, 1]", i, s.Position),
				"Stop positions are fractions of the domain.")
		}
		if i > 0 && s.Position <= stops[i-1].Position {
			return nil, errors.New(errors.ErrScale,
				fmt.Sprintf("Stop %d at %g does not come after stop %d at %g", i, s.Position, i-1, stops[i-1].Position),
				"List stops in strictly ascending position order.")
		}
		if err := validateColor(i, s.Color); err != nil {
			return nil, err
		}
	}

	copied := make([]Stop, len(stops))
	copy(copied, stops)
	return &Scale{stops: copied, domain: [2]float64{domainMin, domainMax}}, nil
}

// MustNew is New for package-level scales built from constants.
func MustNew(stops []Stop, domainMin, domainMax float64) *Scale {
	s, err := New(stops, domainMin, domainMax)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSlices builds stops from parallel color and position slices.
func FromSlices(colors []RGBA, positions []float64) ([]Stop, error) {
	if len(colors) != len(positions) {
		return nil, errors.New(errors.ErrScale,
			fmt.Sprintf("Got %d colors but %d positions", len(colors), len(positions)),
			"Every color needs exactly one position.")
	}
	stops := make([]Stop, len(colors))
	for i := range colors {
		stops[i] = Stop{Color: colors[i], Position: positions[i]}
	}
	return stops, nil
}

// At returns the interpolated color for x with every channel floored.
// Values outside the domain clamp to the nearest end stop.
func (s *Scale) At(x float64) RGBA {
	t := (x - s.domain[0]) / (s.domain[1] - s.domain[0])
	switch {
	case math.IsNaN(t), t <= s.stops[0].Position:
		return floor(s.stops[0].Color)
	case t >= s.stops[len(s.stops)-1].Position:
		return floor(s.stops[len(s.stops)-1].Color)
	}

	for i := 0; i < len(s.stops)-1; i++ {
		lo, hi := s.stops[i], s.stops[i+1]
		if t > hi.Position {
			continue
		}
		local := (t - lo.Position) / (hi.Position - lo.Position)
		return floor(RGBA{
			R: lerp(lo.Color.R, hi.Color.R, local),
			G: lerp(lo.Color.G, hi.Color.G, local),
			B: lerp(lo.Color.B, hi.Color.B, local),
			A: lerp(lo.Color.A, hi.Color.A, local),
		})
	}

	return floor(s.stops[len(s.stops)-1].Color)
}

func validateColor(i int, c RGBA) error {
	for _, ch := range []float64{c.R, c.G, c.B} {
		if ch < 0 || ch > 255 || math.IsNaN(ch) {
			return errors.New(errors.ErrScale,
				fmt.Sprintf("Stop %d has a color channel %g outside 0-255", i, ch),
				"Use 8-bit RGB values.")
		}
	}
	if c.A < 0 || c.A > 1 || math.IsNaN(c.A) {
		return errors.New(errors.ErrScale,
			fmt.Sprintf("Stop %d has alpha %g outside 0-1", i, c.A),
			"Alpha is a fraction between 0 and 1.")
	}
	return nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func floor(c RGBA) RGBA {
	return RGBA{R: math.Floor(c.R), G: math.Floor(c.G), B: math.Floor(c.B), A: math.Floor(c.A)}
}
