// Package bmi derives Body Mass Index records from weight and height and
// classifies them into the fixed health categories.
package bmi

import "math"

// Category is a BMI health band.
type Category int

const (
	// Undefined marks a record derived from unusable input (height <= 0, NaN, Inf).
	Undefined Category = iota
	SevereUnderweight
	Underweight
	Normal
	Overweight
	Obese1
	Obese2
	Obese3
)

// Category boundaries. Each band is the half-open interval [low, high).
const (
	SevereUnderweightMax = 15.0
	UnderweightMax       = 18.5
	NormalMax            = 25.0
	OverweightMax        = 30.0
	Obese1Max            = 35.0
	Obese2Max            = 40.0
)

// String returns the snake_case identifier of the category.
func (c Category) String() string {
	switch c {
	case SevereUnderweight:
		return "severe_underweight"
	case Underweight:
		return "underweight"
	case Normal:
		return "normal"
	case Overweight:
		return "overweight"
	case Obese1:
		return "obese_1"
	case Obese2:
		return "obese_2"
	case Obese3:
		return "obese_3"
	default:
		return "undefined"
	}
}

// Label returns the human-readable description shown next to the readout.
func (c Category) Label() string {
	switch c {
	case SevereUnderweight:
		return "severe underweight"
	case Underweight:
		return "underweight"
	case Normal:
		return "normal"
	case Overweight:
		return "overweight"
	case Obese1:
		return "obese I"
	case Obese2:
		return "obese II"
	case Obese3:
		return "obese III"
	default:
		return "undefined"
	}
}

// MarshalText lets categories serialize as their identifier in JSON output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Record is the derived value for one (weight, height) pair.
type Record struct {
	BMI      float64  `json:"bmi"`
	Rounded  float64  `json:"rounded_bmi"`
	Category Category `json:"category"`
}

// Valid reports whether the record came from usable input.
func (r Record) Valid() bool {
	return r.Category != Undefined
}

// Derive computes the BMI for weight in kilograms and height in centimeters.
// Non-positive height or non-finite input yields an Undefined record with a zero BMI.
func Derive(weight, height float64) Record {
	if height <= 0 || !finite(weight) || !finite(height) {
		return Record{Category: Undefined}
	}

	heightM := height * 0.01
	value := weight / (heightM * heightM)
	if !finite(value) {
		return Record{Category: Undefined}
	}

	return Record{
		BMI:      value,
		Rounded:  Truncate(value),
		Category: Classify(value),
	}
}

// Truncate drops everything past the second decimal place.
func Truncate(value float64) float64 {
	return math.Floor(value*100) / 100
}

// Classify maps an untruncated BMI to its category.
func Classify(value float64) Category {
	switch {
	case math.IsNaN(value):
		return Undefined
	case value < SevereUnderweightMax:
		return SevereUnderweight
	case value < UnderweightMax:
		return Underweight
	case value < NormalMax:
		return Normal
	case value < OverweightMax:
		return Overweight
	case value < Obese1Max:
		return Obese1
	case value < Obese2Max:
		return Obese2
	default:
		return Obese3
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
