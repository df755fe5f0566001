package model

import "time"

// MaxProjectionMonths is the longest horizon a projection will expand to.
const MaxProjectionMonths = 600

// ProjectionParams controls one projection run.
type ProjectionParams struct {
	MonthsAhead       int
	GrowthRatePercent float64
	Start             time.Time
}

// MonthStart truncates t to the first day of its month in UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Months returns MonthsAhead clamped to [0, MaxProjectionMonths].
func (p ProjectionParams) Months() int {
	return min(max(p.MonthsAhead, 0), MaxProjectionMonths)
}

// Periods returns the first day of every month covered by the projection.
// Empty when MonthsAhead < 1.
func (p ProjectionParams) Periods() []time.Time {
	n := p.Months()
	if n == 0 {
		return []time.Time{}
	}
	start := MonthStart(p.Start)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, i, 0)
	}
	return out
}

// End returns the last month of the projection, or Start when empty.
func (p ProjectionParams) End() time.Time {
	start := MonthStart(p.Start)
	n := p.Months()
	if n == 0 {
		return start
	}
	return start.AddDate(0, n-1, 0)
}

// RevenueSeries is one value per month, index i = Start + i months.
type RevenueSeries []float64

// First returns the first value and whether the series is non-empty.
func (s RevenueSeries) First() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Last returns the last value and whether the series is non-empty.
func (s RevenueSeries) Last() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Projection holds the smooth projected series and the jittered actual series.
// Both always have the same length and start month.
type Projection struct {
	Start     time.Time
	Projected RevenueSeries
	Actual    RevenueSeries
}

// Len returns the number of months in the projection.
func (p Projection) Len() int {
	return len(p.Projected)
}
