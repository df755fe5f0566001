package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/mrrgen/internal/model"
)

func TestRun_EndToEnd(t *testing.T) {
	tiers := []model.PricingTier{{Name: "Basic", UnitPrice: 9.99, Subscribers: 100}}
	p := model.ProjectionParams{
		MonthsAhead:       12,
		GrowthRatePercent: 10,
		Start:             time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	// A draw of 0.5 means zero jitter, so actual tracks projected exactly.
	res, err := Run(tiers, p, fixedSource(0.5), MapOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Base != 999 {
		t.Fatalf("Base = %v, want 999", res.Base)
	}
	if res.Projection.Len() != 12 || len(res.Projection.Actual) != 12 {
		t.Fatalf("series lengths = %d/%d, want 12/12", res.Projection.Len(), len(res.Projection.Actual))
	}

	// 999 * 1.1^11
	last := res.Projection.Projected[11]
	if !approxEqual(last, 2850.2635894038926) {
		t.Fatalf("Projected[11] = %v, want ~2850.26", last)
	}
	if res.Geometry.Labels[0].Text != "€2,850" {
		t.Errorf("max label = %q, want €2,850", res.Geometry.Labels[0].Text)
	}
	if res.Geometry.Labels[2].Text != "€999" {
		t.Errorf("min label = %q, want €999", res.Geometry.Labels[2].Text)
	}
	if res.StartLabel != "Jan 2023" || res.EndLabel != "Dec 2023" {
		t.Errorf("span = %q..%q, want Jan 2023..Dec 2023", res.StartLabel, res.EndLabel)
	}
	if len(res.Periods) != 12 || !res.Periods[11].Equal(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Periods = %v", res.Periods)
	}

	pl := res.ProjectedLine()
	if pl[0].X != 16 || pl[0].Y != 90 {
		t.Errorf("first projected point = %+v, want {16 90}", pl[0])
	}
	if !approxEqual(pl[11].X, 100) || pl[11].Y != 10 {
		t.Errorf("last projected point = %+v, want {100 10}", pl[11])
	}
	if len(res.ActualLine()) != 12 {
		t.Errorf("actual line has %d points, want 12", len(res.ActualLine()))
	}

	if res.Summary.StartMRR != "€999.00" {
		t.Errorf("StartMRR = %q, want €999.00", res.Summary.StartMRR)
	}
	if res.Summary.CurrentMRR != "€2,850.26" {
		t.Errorf("CurrentMRR = %q, want €2,850.26", res.Summary.CurrentMRR)
	}
	if res.Summary.Growth != "+185.3%" {
		t.Errorf("Growth = %q, want +185.3%%", res.Summary.Growth)
	}
}

func TestRun_NoTiers(t *testing.T) {
	res, err := Run(nil, model.ProjectionParams{MonthsAhead: 3, GrowthRatePercent: 10}, nil, MapOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Geometry.Degenerate() {
		t.Fatal("all-zero projection should have a degenerate range")
	}
	for _, pt := range res.ActualLine() {
		if pt.Y != 50 {
			t.Fatalf("zero series point Y = %v, want 50", pt.Y)
		}
	}
	if res.Summary.Growth != "+0.0%" {
		t.Fatalf("Growth = %q, want +0.0%%", res.Summary.Growth)
	}
}

func TestRun_ZeroMonths(t *testing.T) {
	res, err := Run(model.DefaultTiers(), model.ProjectionParams{MonthsAhead: 0}, nil, MapOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.ProjectedLine()) != 0 || len(res.ActualLine()) != 0 {
		t.Fatalf("expected empty lines, got %d/%d", len(res.ProjectedLine()), len(res.ActualLine()))
	}
	if len(res.Periods) != 0 {
		t.Fatalf("Periods = %v, want empty", res.Periods)
	}
}

func TestRun_DoesNotAliasTiers(t *testing.T) {
	tiers := model.DefaultTiers()
	res, err := Run(tiers, model.ProjectionParams{MonthsAhead: 2}, nil, MapOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	tiers[0].Subscribers = 1
	if res.Tiers[0].Subscribers != 100 {
		t.Fatal("Result.Tiers changed after caller mutated its slice")
	}
}
