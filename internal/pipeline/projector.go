package pipeline

import (
	"math"
	"math/rand/v2"

	"github.com/theirongolddev/mrrgen/internal/model"
)

// JitterFraction bounds the noise applied to the actual series: each value
// lands within ±5% of its projected value.
const JitterFraction = 0.05

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewSeededSource returns a reproducible source for the given seed.
func NewSeededSource(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ProjectSeries expands base into MonthsAhead months of compound growth and
// a jittered copy of it. A nil rnd draws from the global generator.
// MonthsAhead < 1 yields two empty (non-nil) series; horizons beyond
// model.MaxProjectionMonths are cut to that length.
func ProjectSeries(base float64, p model.ProjectionParams, rnd RandSource) model.Projection {
	if rnd == nil {
		rnd = globalSource{}
	}

	n := p.Months()

	proj := model.Projection{
		Start:     model.MonthStart(p.Start),
		Projected: make(model.RevenueSeries, n),
		Actual:    make(model.RevenueSeries, n),
	}

	factor := 1 + p.GrowthRatePercent/100
	for i := 0; i < n; i++ {
		v := base * math.Pow(factor, float64(i))
		proj.Projected[i] = v
		proj.Actual[i] = v * (1 + jitter(rnd))
	}
	return proj
}

// jitter maps a [0, 1) draw onto [-JitterFraction, JitterFraction).
func jitter(rnd RandSource) float64 {
	u := rnd.Float64()
	if u < 0 || u >= 1 || math.IsNaN(u) {
		u = 0.5
	}
	return (u - 0.5) * 2 * JitterFraction
}
