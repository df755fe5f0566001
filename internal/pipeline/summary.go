package pipeline

import (
	"math"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/model"
)

// GrowthPercent returns (last-first)/first*100 rounded to one decimal.
// The second result is false when the value is undefined: an empty series,
// a zero first value, or a non-finite outcome. The percentage is 0 then.
func GrowthPercent(actual model.RevenueSeries) (float64, bool) {
	first, ok := actual.First()
	if !ok || first == 0 {
		return 0, false
	}
	last, _ := actual.Last()

	pct := (last - first) / first * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return math.Round(pct*10) / 10, true
}

// Summarize builds the headline values shown above the chart. Start and
// current MRR are the first and last actual values; an empty projection
// reports zero for both.
func Summarize(p model.Projection) model.Summary {
	first, _ := p.Actual.First()
	last, _ := p.Actual.Last()
	pct, defined := GrowthPercent(p.Actual)

	return model.Summary{
		StartMRR:      cli.FormatCurrency(first),
		CurrentMRR:    cli.FormatCurrency(last),
		Growth:        cli.FormatGrowth(pct, defined),
		GrowthPercent: pct,
		GrowthDefined: defined,
	}
}
