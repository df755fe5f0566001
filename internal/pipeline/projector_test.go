package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/mrrgen/internal/model"
)

func params(months int, growth float64) model.ProjectionParams {
	return model.ProjectionParams{
		MonthsAhead:       months,
		GrowthRatePercent: growth,
		Start:             time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProjectSeries_CompoundGrowth(t *testing.T) {
	p := ProjectSeries(1000, params(3, 10), fixedSource(0.5))

	want := []float64{1000, 1100, 1210}
	if len(p.Projected) != len(want) {
		t.Fatalf("len(Projected) = %d, want %d", len(p.Projected), len(want))
	}
	for i, w := range want {
		if !approxEqual(p.Projected[i], w) {
			t.Errorf("Projected[%d] = %v, want %v", i, p.Projected[i], w)
		}
	}
}

func TestProjectSeries_NegativeAndFlatGrowth(t *testing.T) {
	flat := ProjectSeries(500, params(4, 0), fixedSource(0.5))
	for i, v := range flat.Projected {
		if v != 500 {
			t.Fatalf("flat Projected[%d] = %v, want 500", i, v)
		}
	}

	decline := ProjectSeries(1000, params(3, -50), fixedSource(0.5))
	if !approxEqual(decline.Projected[2], 250) {
		t.Fatalf("decline Projected[2] = %v, want 250", decline.Projected[2])
	}
}

func TestProjectSeries_JitterBound(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		p := ProjectSeries(999, params(24, 7.5), NewSeededSource(seed))
		if len(p.Actual) != len(p.Projected) {
			t.Fatalf("seed %d: len(Actual)=%d len(Projected)=%d", seed, len(p.Actual), len(p.Projected))
		}
		for i := range p.Actual {
			diff := math.Abs(p.Actual[i] - p.Projected[i])
			if diff > JitterFraction*p.Projected[i]+1e-9 {
				t.Fatalf("seed %d: |Actual[%d]-Projected[%d]| = %v exceeds 5%% of %v",
					seed, i, i, diff, p.Projected[i])
			}
		}
	}
}

func TestProjectSeries_JitterExactWithStubSource(t *testing.T) {
	src := &seqSource{vals: []float64{0, 0.75, 0.5}}
	p := ProjectSeries(1000, params(3, 0), src)

	want := []float64{950, 1025, 1000}
	for i, w := range want {
		if !approxEqual(p.Actual[i], w) {
			t.Errorf("Actual[%d] = %v, want %v", i, p.Actual[i], w)
		}
	}
}

func TestProjectSeries_SeededIsReproducible(t *testing.T) {
	a := ProjectSeries(1234, params(12, 3), NewSeededSource(42))
	b := ProjectSeries(1234, params(12, 3), NewSeededSource(42))
	for i := range a.Actual {
		if a.Actual[i] != b.Actual[i] {
			t.Fatalf("Actual[%d] differs between runs with the same seed: %v vs %v", i, a.Actual[i], b.Actual[i])
		}
	}
}

func TestProjectSeries_NilSourceStaysInBounds(t *testing.T) {
	p := ProjectSeries(100, params(50, 1), nil)
	for i := range p.Actual {
		if math.Abs(p.Actual[i]-p.Projected[i]) > JitterFraction*p.Projected[i]+1e-9 {
			t.Fatalf("Actual[%d] = %v out of bounds around %v", i, p.Actual[i], p.Projected[i])
		}
	}
}

func TestProjectSeries_SingleMonth(t *testing.T) {
	p := ProjectSeries(999, params(1, 250), fixedSource(0.5))
	if len(p.Projected) != 1 || p.Projected[0] != 999 {
		t.Fatalf("Projected = %v, want [999]", p.Projected)
	}
}

func TestProjectSeries_ZeroBase(t *testing.T) {
	p := ProjectSeries(0, params(6, 10), NewSeededSource(7))
	for i := range p.Projected {
		if p.Projected[i] != 0 || p.Actual[i] != 0 {
			t.Fatalf("index %d: Projected=%v Actual=%v, want zeros", i, p.Projected[i], p.Actual[i])
		}
	}
}

func TestProjectSeries_NonPositiveMonthsClampsToEmpty(t *testing.T) {
	for _, months := range []int{0, -3} {
		p := ProjectSeries(1000, params(months, 10), nil)
		if p.Projected == nil || p.Actual == nil {
			t.Fatalf("months=%d: got nil series, want empty non-nil", months)
		}
		if p.Len() != 0 || len(p.Actual) != 0 {
			t.Fatalf("months=%d: lengths %d/%d, want 0/0", months, len(p.Projected), len(p.Actual))
		}
	}
}

func TestProjectSeries_StartNormalizedToMonth(t *testing.T) {
	p := model.ProjectionParams{MonthsAhead: 2, Start: time.Date(2023, time.March, 17, 15, 4, 0, 0, time.UTC)}
	proj := ProjectSeries(10, p, nil)
	want := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !proj.Start.Equal(want) {
		t.Fatalf("Start = %v, want %v", proj.Start, want)
	}
}

func BenchmarkProjectSeries(b *testing.B) {
	src := NewSeededSource(1)
	p := params(120, 5)
	for i := 0; i < b.N; i++ {
		_ = ProjectSeries(999, p, src)
	}
}

func TestProjectSeries_HugeHorizonIsCapped(t *testing.T) {
	p := ProjectSeries(1, params(1<<62, 0), fixedSource(0.5))
	if p.Len() != model.MaxProjectionMonths {
		t.Fatalf("Len = %d, want %d", p.Len(), model.MaxProjectionMonths)
	}
	if got := len(params(1<<62, 0).Periods()); got != model.MaxProjectionMonths {
		t.Fatalf("len(Periods) = %d, want %d", got, model.MaxProjectionMonths)
	}
}
