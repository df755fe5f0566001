package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/mrrgen/internal/model"
)

func benchTiers(n int) []model.PricingTier {
	tiers := make([]model.PricingTier, n)
	for i := range tiers {
		tiers[i] = model.PricingTier{Name: "t", UnitPrice: 9.99 + float64(i), Subscribers: 100 + i}
	}
	return tiers
}

func BenchmarkComputeBaseRevenue(b *testing.B) {
	tiers := benchTiers(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ComputeBaseRevenue(tiers)
	}
}

func BenchmarkMapToPlot(b *testing.B) {
	p := ProjectSeries(999, model.ProjectionParams{MonthsAhead: 120, GrowthRatePercent: 5}, NewSeededSource(1))
	series := []model.RevenueSeries{p.Projected, p.Actual}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MapToPlot(series, MapOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	tiers := benchTiers(5)
	params := model.ProjectionParams{
		MonthsAhead:       36,
		GrowthRatePercent: 8,
		Start:             time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	rnd := NewSeededSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(tiers, params, rnd, MapOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
