package slider

import (
	"math"
	"testing"

	"github.com/rileyhilliard/bmi/internal/errors"
	"github.com/rileyhilliard/bmi/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightConfig() Config {
	return Config{ID: "weight", Label: "Weight", Unit: "kg", Min: 40, Initial: 70, Max: 140}
}

func TestNew_EmitsInitialBeforeInteraction(t *testing.T) {
	s, err := New(weightConfig())
	require.NoError(t, err)

	var got []float64
	s.Values().Subscribe(func(v float64) { got = append(got, v) })

	assert.Equal(t, []float64{70}, got)
	assert.Equal(t, 70.0, s.Value())
	assert.Equal(t, 1.0, s.Config().Step, "step should default to 1")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{"valid", func(*Config) {}, ""},
		{"initial at min", func(c *Config) { c.Initial = c.Min }, ""},
		{"initial at max", func(c *Config) { c.Initial = c.Max }, ""},
		{"missing id", func(c *Config) { c.ID = "" }, "missing an id"},
		{"min above max", func(c *Config) { c.Min, c.Max = 150, 140 }, "above max"},
		{"initial below min", func(c *Config) { c.Initial = 39 }, "outside [40, 140]"},
		{"initial above max", func(c *Config) { c.Initial = 141 }, "outside [40, 140]"},
		{"negative step", func(c *Config) { c.Step = -1 }, "negative"},
		{"NaN bound", func(c *Config) { c.Max = math.NaN() }, "non-finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weightConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestSlider_SetClamps(t *testing.T) {
	s, err := New(weightConfig())
	require.NoError(t, err)

	s.Set(500)
	assert.Equal(t, 140.0, s.Value())

	s.Set(-3)
	assert.Equal(t, 40.0, s.Value())

	s.Set(math.NaN())
	assert.Equal(t, 40.0, s.Value())
}

func TestSlider_SetSameValuePublishesNothing(t *testing.T) {
	s, err := New(weightConfig())
	require.NoError(t, err)

	var got []float64
	s.Values().Subscribe(func(v float64) { got = append(got, v) })
	s.Set(70)
	s.Set(80)
	s.Set(80)

	assert.Equal(t, []float64{70, 80}, got)
}

func TestSlider_IncrementAndReset(t *testing.T) {
	cfg := weightConfig()
	cfg.Step = 0.5
	s, err := New(cfg)
	require.NoError(t, err)

	s.Increment(3)
	assert.Equal(t, 71.5, s.Value())

	s.Increment(-10)
	assert.Equal(t, 66.5, s.Value())

	s.Decrement(1)
	assert.Equal(t, 66.0, s.Value())

	s.Increment(1000)
	assert.Equal(t, 140.0, s.Value())

	s.Decrement(1000)
	assert.Equal(t, 40.0, s.Value())

	s.Reset()
	assert.Equal(t, 70.0, s.Value())
}

func TestSlider_InstancesAreIndependent(t *testing.T) {
	a, err := New(weightConfig())
	require.NoError(t, err)
	b, err := New(weightConfig())
	require.NoError(t, err)

	a.Set(100)
	a.SetFocused(true)

	assert.Equal(t, 70.0, b.Value())
	assert.False(t, b.Focused())
}

func TestSlider_Node(t *testing.T) {
	s, err := New(weightConfig())
	require.NoError(t, err)
	s.SetFocused(true)

	n := s.Node()

	assert.Equal(t, "weight", n.Attrs["id"])
	assert.True(t, n.HasClass("labeled-slider"))
	assert.Equal(t, "Weight 70 kg", n.TextContent())

	inputs := n.FindAll(func(c view.Node) bool { return c.Tag == "input" })
	require.Len(t, inputs, 1)
	assert.Equal(t, "weight-input", inputs[0].Attrs["id"])
	assert.Equal(t, "40", inputs[0].Attrs["min"])
	assert.Equal(t, "140", inputs[0].Attrs["max"])
	assert.Equal(t, "70", inputs[0].Attrs["value"])
	assert.Equal(t, "true", inputs[0].Attrs[view.AttrFocused])
}

func TestSlider_Close(t *testing.T) {
	s, err := New(weightConfig())
	require.NoError(t, err)

	s.Values().Subscribe(func(float64) {})
	s.Close()

	assert.Zero(t, s.Values().Subscribers())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "70", FormatValue(70))
	assert.Equal(t, "18.5", FormatValue(18.5))
}
