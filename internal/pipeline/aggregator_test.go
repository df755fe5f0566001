package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/mrrgen/internal/model"
)

func TestComputeBaseRevenue_Empty(t *testing.T) {
	if got := ComputeBaseRevenue(nil); got != 0 {
		t.Fatalf("ComputeBaseRevenue(nil) = %v, want 0", got)
	}
}

func TestComputeBaseRevenue_ExactCents(t *testing.T) {
	got := ComputeBaseRevenue([]model.PricingTier{{Name: "Basic", UnitPrice: 9.99, Subscribers: 100}})
	if got != 999 {
		t.Fatalf("ComputeBaseRevenue = %v, want exactly 999", got)
	}
}

func TestComputeBaseRevenue_SumAndOrder(t *testing.T) {
	tiers := []model.PricingTier{
		{Name: "Basic", UnitPrice: 9.99, Subscribers: 100},
		{Name: "Pro", UnitPrice: 29.5, Subscribers: 40},
		{Name: "Team", UnitPrice: 99.01, Subscribers: 7},
		{Name: "Free", UnitPrice: 0, Subscribers: 5000},
	}
	want := 999.0 + 1180.0 + 693.07

	got := ComputeBaseRevenue(tiers)
	if !approxEqual(got, want) {
		t.Fatalf("ComputeBaseRevenue = %v, want %v", got, want)
	}

	reversed := make([]model.PricingTier, len(tiers))
	for i, tier := range tiers {
		reversed[len(tiers)-1-i] = tier
	}
	if r := ComputeBaseRevenue(reversed); r != got {
		t.Fatalf("reordered tiers = %v, want %v", r, got)
	}
}

func TestComputeBaseRevenue_MatchesPerTierSum(t *testing.T) {
	tiers := []model.PricingTier{
		{UnitPrice: 4.25, Subscribers: 12},
		{UnitPrice: 19.99, Subscribers: 3},
	}
	var want float64
	for _, tier := range tiers {
		want += tier.MonthlyRevenue()
	}
	if got := ComputeBaseRevenue(tiers); !approxEqual(got, want) {
		t.Fatalf("ComputeBaseRevenue = %v, want %v", got, want)
	}
}

func TestComputeBaseRevenue_BadInputDoesNotPanic(t *testing.T) {
	got := ComputeBaseRevenue([]model.PricingTier{{UnitPrice: -5, Subscribers: 2}})
	if got != -10 {
		t.Fatalf("negative price total = %v, want -10", got)
	}
}

func TestComputeBaseRevenue_NonFinitePriceDoesNotPanic(t *testing.T) {
	got := ComputeBaseRevenue([]model.PricingTier{{UnitPrice: math.NaN(), Subscribers: 1}})
	if !math.IsNaN(got) {
		t.Fatalf("NaN price total = %v, want NaN", got)
	}

	got = ComputeBaseRevenue([]model.PricingTier{
		{UnitPrice: 9.99, Subscribers: 100},
		{UnitPrice: math.Inf(1), Subscribers: 2},
	})
	if !math.IsInf(got, 1) {
		t.Fatalf("+Inf price total = %v, want +Inf", got)
	}
}

func TestRun_NaNTierDoesNotPanic(t *testing.T) {
	tiers := []model.PricingTier{{Name: "Broken", UnitPrice: math.NaN(), Subscribers: 1}}
	params := model.ProjectionParams{MonthsAhead: 3, GrowthRatePercent: 10, Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}

	res, err := Run(tiers, params, NewSeededSource(1), MapOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !math.IsNaN(res.Base) {
		t.Fatalf("BaseRevenue = %v, want NaN", res.Base)
	}
	for _, l := range res.Geometry.Labels {
		if math.IsNaN(l.Value) {
			t.Fatalf("label value is NaN: %+v", l)
		}
	}
}
