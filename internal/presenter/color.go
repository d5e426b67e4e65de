package presenter

import (
	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/scale"
)

// Stop colors of the live bar.
var (
	DarkRed     = scale.RGBA{R: 140, G: 18, B: 18, A: 1}
	AmberYellow = scale.RGBA{R: 181, G: 162, B: 13, A: 1}
	Green       = scale.RGBA{R: 0, G: 128, B: 0, A: 1}
	BurntOrange = scale.RGBA{R: 187, G: 73, B: 27, A: 1}
)

// StopColors and StopPositions lay the colors along the bar: red at both
// extremes, green over the normal band.
var (
	StopColors    = []scale.RGBA{DarkRed, AmberYellow, Green, AmberYellow, BurntOrange, DarkRed}
	StopPositions = []float64{0, 0.17, 0.34, 0.46, 0.73, 1}
)

var bmiScale = mustScale(StopColors, StopPositions)

func mustScale(colors []scale.RGBA, positions []float64) *scale.Scale {
	stops, err := scale.FromSlices(colors, positions)
	if err != nil {
		panic(err)
	}
	return scale.MustNew(stops, 0, 100)
}

// Percentage maps a BMI onto the drawn axis, 12 -> 0 and 40 -> 100.
// The result is not clamped.
func Percentage(value float64) float64 {
	return (value - bmi.AxisMin) / bmi.AxisLength * 100
}

// ColorForBmi returns the live bar color for value. Values off the axis take
// the color of the nearest end.
func ColorForBmi(value float64) scale.RGBA {
	return bmiScale.At(Percentage(value))
}

// IndicatorWidth is the live bar width in percent of the axis. BMIs outside
// 12-40 give widths outside 0-100; renderers clamp when drawing.
func IndicatorWidth(value float64) float64 {
	return Percentage(value)
}

// SegmentWidth is a legend cell's width in percent of the axis.
func SegmentWidth(s bmi.Segment) float64 {
	return (s.Max - s.Min) / bmi.AxisLength * 100
}
