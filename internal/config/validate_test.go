package config

import (
	"errors"
	"math"
	"testing"
)

func TestValidateMonths(t *testing.T) {
	for _, n := range []int{0, 1, 12, MaxMonths} {
		if err := ValidateMonths(n); err != nil {
			t.Fatalf("ValidateMonths(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, MaxMonths + 1, 1 << 62} {
		if err := ValidateMonths(n); !errors.Is(err, ErrMonthsOutOfRange) {
			t.Fatalf("ValidateMonths(%d) = %v, want ErrMonthsOutOfRange", n, err)
		}
	}
}

func TestValidateGrowth(t *testing.T) {
	for _, g := range []float64{-100, 0, 10, 250.5} {
		if err := ValidateGrowth(g); err != nil {
			t.Fatalf("ValidateGrowth(%v) = %v, want nil", g, err)
		}
	}
	for _, g := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -100.5} {
		if err := ValidateGrowth(g); !errors.Is(err, ErrInvalidGrowth) {
			t.Fatalf("ValidateGrowth(%v) = %v, want ErrInvalidGrowth", g, err)
		}
	}
}

func TestProjectionConfigValidate(t *testing.T) {
	p := DefaultConfig().Projection
	if err := p.Validate(); err != nil {
		t.Fatalf("default projection config invalid: %v", err)
	}

	p.Months = 100000
	if err := p.Validate(); !errors.Is(err, ErrMonthsOutOfRange) {
		t.Fatalf("Validate with months=100000 = %v, want ErrMonthsOutOfRange", err)
	}

	p = DefaultConfig().Projection
	p.GrowthPercent = math.NaN()
	if err := p.Validate(); !errors.Is(err, ErrInvalidGrowth) {
		t.Fatalf("Validate with NaN growth = %v, want ErrInvalidGrowth", err)
	}

	p = DefaultConfig().Projection
	p.Start = "2023/01"
	if err := p.Validate(); err == nil {
		t.Fatal("Validate accepted a malformed start month")
	}
}
