package presenter

import (
	"math"
	"testing"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustScale_RejectsMismatchedSlices(t *testing.T) {
	assert.Panics(t, func() {
		mustScale([]scale.RGBA{DarkRed, Green}, []float64{0})
	})
	assert.NotPanics(t, func() {
		mustScale(StopColors, StopPositions)
	})
}

func TestScale_ExactAtStopPercentages(t *testing.T) {
	tests := []struct {
		percent float64
		want    scale.RGBA
	}{
		{0, DarkRed},
		{17, AmberYellow},
		{34, Green},
		{46, AmberYellow},
		{73, BurntOrange},
		{100, DarkRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bmiScale.At(tt.percent), "percent=%v", tt.percent)
	}
}

func TestColorForBmi_MatchesStopsWithinRounding(t *testing.T) {
	require.Len(t, StopColors, len(StopPositions))
	for i, pos := range StopPositions {
		want := StopColors[i]
		value := bmi.AxisMin + pos*bmi.AxisLength
		got := ColorForBmi(value)

		assert.InDelta(t, want.R, got.R, 1, "bmi=%v", value)
		assert.InDelta(t, want.G, got.G, 1, "bmi=%v", value)
		assert.InDelta(t, want.B, got.B, 1, "bmi=%v", value)
		assert.Equal(t, 1.0, got.A)
	}
}

func TestColorForBmi_ClampsOffAxis(t *testing.T) {
	assert.Equal(t, DarkRed, ColorForBmi(9.07))
	assert.Equal(t, DarkRed, ColorForBmi(71.43))
	assert.Equal(t, DarkRed, ColorForBmi(math.Inf(1)))
}

func TestColorForBmi_ChannelsAreIntegers(t *testing.T) {
	for v := 10.0; v <= 45; v += 0.37 {
		c := ColorForBmi(v)
		for _, ch := range []float64{c.R, c.G, c.B, c.A} {
			assert.Equal(t, math.Floor(ch), ch, "bmi=%v", v)
		}
	}
}

func TestColorForBmi_RednessGrowsTowardEdges(t *testing.T) {
	// Low edge: green channel rises from dark red toward amber.
	prev := ColorForBmi(bmi.AxisMin)
	for v := bmi.AxisMin; v <= 16.7; v += 0.1 {
		c := ColorForBmi(v)
		assert.GreaterOrEqual(t, c.G, prev.G, "bmi=%v", v)
		prev = c
	}

	// High edge: green channel falls from amber through orange to dark red.
	prev = ColorForBmi(25)
	for v := 25.0; v <= bmi.AxisMax; v += 0.1 {
		c := ColorForBmi(v)
		assert.LessOrEqual(t, c.G, prev.G, "bmi=%v", v)
		prev = c
	}
}

func TestColorForBmi_NormalIsGreenish(t *testing.T) {
	c := ColorForBmi(24.22)

	assert.Greater(t, c.G, c.B)
	assert.InDelta(t, 145, c.R, 1)
	assert.InDelta(t, 155, c.G, 1)
}

func TestGeometry(t *testing.T) {
	assert.Equal(t, 0.0, IndicatorWidth(12))
	assert.Equal(t, 100.0, IndicatorWidth(40))
	assert.InDelta(t, 43.64, IndicatorWidth(24.22), 0.01)
	assert.Greater(t, IndicatorWidth(71.43), 100.0, "off-axis widths are not clamped")
	assert.Less(t, IndicatorWidth(9.07), 0.0)

	total := 0.0
	for _, s := range bmi.Segments {
		total += SegmentWidth(s)
	}
	assert.InDelta(t, 100, total, 1e-9)
	assert.InDelta(t, 100*3/28.0, SegmentWidth(bmi.Segments[0]), 1e-9)
	assert.InDelta(t, 100*6.5/28.0, SegmentWidth(bmi.Segments[2]), 1e-9)
}
