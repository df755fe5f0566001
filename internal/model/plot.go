package model

import "math"

// Layout describes where the plotted curve sits inside a 0-100 viewbox.
type Layout struct {
	Left   float64 // x of the first point
	Width  float64 // horizontal span from first to last point
	Top    float64 // y of the maximum value
	Bottom float64 // y of the minimum value
}

// DefaultLayout leaves a 16-unit gutter for Y labels and a 10-unit band
// above and below the curve.
var DefaultLayout = Layout{Left: 16, Width: 84, Top: 10, Bottom: 90}

// Midpoint is the y coordinate used when the value range is degenerate.
func (l Layout) Midpoint() float64 {
	return (l.Top + l.Bottom) / 2
}

// Point is a position in plot coordinates.
type Point struct {
	X, Y float64
}

// AxisLabel is one Y-axis tick.
type AxisLabel struct {
	Value float64
	Text  string
}

// PlotGeometry is the drawable result of mapping series onto one shared scale.
type PlotGeometry struct {
	Min    float64
	Max    float64
	Lines  [][]Point
	Labels []AxisLabel
	Layout Layout
}

// Degenerate reports whether the range collapses to a single value.
func (g PlotGeometry) Degenerate() bool {
	return g.Min == g.Max
}

// Normalize maps v linearly so Min lands on Layout.Bottom and Max on
// Layout.Top. Degenerate ranges and non-finite values map to the midpoint.
func (g PlotGeometry) Normalize(v float64) float64 {
	if g.Degenerate() || math.IsNaN(v) || math.IsInf(v, 0) {
		return g.Layout.Midpoint()
	}
	span := g.Layout.Bottom - g.Layout.Top
	return g.Layout.Bottom - (v-g.Min)/(g.Max-g.Min)*span
}

// Summary holds the headline strings shown next to the chart.
type Summary struct {
	StartMRR      string
	CurrentMRR    string
	Growth        string
	GrowthPercent float64
	GrowthDefined bool
}
