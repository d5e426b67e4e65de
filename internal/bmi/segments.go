package bmi

import "fmt"

// Axis bounds of the drawn bar. Values outside overflow the bar.
const (
	AxisMin    = 12.0
	AxisLength = 28.0
	AxisMax    = AxisMin + AxisLength
)

// Segment is one cell of the static legend bar.
type Segment struct {
	Category Category
	Min      float64
	Max      float64
	// Color is the fill of the legend cell as #RRGGBB.
	Color string
}

// Segments lists the legend cells left to right. Obese III sits past the
// drawn axis and has no cell.
var Segments = []Segment{
	{Category: SevereUnderweight, Min: AxisMin, Max: SevereUnderweightMax, Color: "#8C1212"},
	{Category: Underweight, Min: SevereUnderweightMax, Max: UnderweightMax, Color: "#B5A20D"},
	{Category: Normal, Min: UnderweightMax, Max: NormalMax, Color: "#008000"},
	{Category: Overweight, Min: NormalMax, Max: OverweightMax, Color: "#B5A20D"},
	{Category: Obese1, Min: OverweightMax, Max: Obese1Max, Color: "#BB491B"},
	{Category: Obese2, Min: Obese1Max, Max: Obese2Max, Color: "#8C1212"},
}

// Range returns the text shown inside the legend cell.
func (s Segment) Range() string {
	if s.Min <= AxisMin {
		return fmt.Sprintf("< %s", formatBound(s.Max))
	}
	return fmt.Sprintf("%s - %s", formatBound(s.Min), formatBound(s.Max))
}

// Tooltip describes the category and its bounds.
func (s Segment) Tooltip() string {
	return fmt.Sprintf("%s (%s)", s.Category.Label(), s.Range())
}

func formatBound(v float64) string {
	return fmt.Sprintf("%g", v)
}

// SegmentFor returns the legend cell for c. Obese III and Undefined have none.
func SegmentFor(c Category) (Segment, bool) {
	for _, s := range Segments {
		if s.Category == c {
			return s, true
		}
	}
	return Segment{}, false
}

// RangeOf describes the BMI interval of c, including Obese III which the
// legend leaves off.
func RangeOf(c Category) string {
	if c == Obese3 {
		return fmt.Sprintf(">= %s", formatBound(Obese2Max))
	}
	if s, ok := SegmentFor(c); ok {
		return s.Range()
	}
	return "n/a"
}
