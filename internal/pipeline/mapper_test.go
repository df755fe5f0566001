package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/mrrgen/internal/model"
)

func assertFiniteGeometry(t *testing.T, g model.PlotGeometry) {
	t.Helper()
	for li, line := range g.Lines {
		for k, pt := range line {
			if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
				t.Fatalf("line %d point %d is not finite: %+v", li, k, pt)
			}
		}
	}
	for _, l := range g.Labels {
		if math.IsNaN(l.Value) || math.IsInf(l.Value, 0) {
			t.Fatalf("label value not finite: %+v", l)
		}
	}
}

func TestMapToPlot_Bounds(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{100, 150, 200}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if g.Normalize(100) != 90 {
		t.Errorf("Normalize(min) = %v, want 90", g.Normalize(100))
	}
	if g.Normalize(200) != 10 {
		t.Errorf("Normalize(max) = %v, want 10", g.Normalize(200))
	}
	if g.Normalize(150) != 50 {
		t.Errorf("Normalize(mid) = %v, want 50", g.Normalize(150))
	}

	line := g.Lines[0]
	wantX := []float64{16, 58, 100}
	for k, x := range wantX {
		if !approxEqual(line[k].X, x) {
			t.Errorf("point %d X = %v, want %v", k, line[k].X, x)
		}
	}
}

func TestMapToPlot_SharedScale(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{10, 20}, {0, 40}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if g.Min != 0 || g.Max != 40 {
		t.Fatalf("range = [%v, %v], want [0, 40]", g.Min, g.Max)
	}
	// 10 sits a quarter of the way up the shared 0..40 scale.
	if y := g.Lines[0][0].Y; !approxEqual(y, 70) {
		t.Fatalf("series 0 point 0 Y = %v, want 70", y)
	}
	if y := g.Lines[1][1].Y; y != 10 {
		t.Fatalf("series 1 max Y = %v, want 10", y)
	}
}

func TestMapToPlot_DegenerateRange(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{5, 5, 5}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if !g.Degenerate() {
		t.Fatal("expected degenerate range")
	}
	for k, pt := range g.Lines[0] {
		if pt.Y != 50 {
			t.Errorf("point %d Y = %v, want 50", k, pt.Y)
		}
	}
	if g.Normalize(5) != 50 {
		t.Fatalf("Normalize(5) = %v, want 50", g.Normalize(5))
	}
	assertFiniteGeometry(t, g)
}

func TestMapToPlot_SinglePoint(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{42}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if len(g.Lines) != 1 || len(g.Lines[0]) != 1 {
		t.Fatalf("lines = %+v, want one line with one point", g.Lines)
	}
	pt := g.Lines[0][0]
	if pt.X != model.DefaultLayout.Left || pt.Y != 50 {
		t.Fatalf("single point = %+v, want {16 50}", pt)
	}
	assertFiniteGeometry(t, g)
}

func TestMapToPlot_EmptySeries(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{}, {}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if g.Min != 0 || g.Max != 0 {
		t.Fatalf("range = [%v, %v], want [0, 0]", g.Min, g.Max)
	}
	if len(g.Lines) != 2 || len(g.Lines[0]) != 0 {
		t.Fatalf("lines = %+v, want two empty lines", g.Lines)
	}
	if len(g.Labels) != 3 || g.Labels[0].Text != "€0" {
		t.Fatalf("labels = %+v, want three €0 labels", g.Labels)
	}
}

func TestMapToPlot_NonFiniteValuesIgnored(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{math.NaN(), 10, math.Inf(1), 30}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if g.Min != 10 || g.Max != 30 {
		t.Fatalf("range = [%v, %v], want [10, 30]", g.Min, g.Max)
	}
	if g.Lines[0][0].Y != 50 || g.Lines[0][2].Y != 50 {
		t.Fatalf("non-finite values should plot at midpoint, got %+v", g.Lines[0])
	}
	assertFiniteGeometry(t, g)
}

func TestMapToPlot_Errors(t *testing.T) {
	if _, err := MapToPlot(nil, MapOptions{}); !errors.Is(err, ErrNoSeries) {
		t.Fatalf("nil series err = %v, want ErrNoSeries", err)
	}
	_, err := MapToPlot([]model.RevenueSeries{{1, 2, 3}, {1, 2}}, MapOptions{})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("mismatch err = %v, want ErrLengthMismatch", err)
	}
}

func TestMapToPlot_Labels(t *testing.T) {
	g, err := MapToPlot([]model.RevenueSeries{{1000, 3000}}, MapOptions{})
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	want := []model.AxisLabel{
		{Value: 3000, Text: "€3,000"},
		{Value: 2000, Text: "€2,000"},
		{Value: 1000, Text: "€1,000"},
	}
	for i, w := range want {
		if g.Labels[i] != w {
			t.Errorf("label %d = %+v, want %+v", i, g.Labels[i], w)
		}
	}
}

func TestMapToPlot_CustomLayoutAndFormatter(t *testing.T) {
	opts := MapOptions{
		Layout:      model.Layout{Left: 0, Width: 10, Top: 0, Bottom: 100},
		FormatLabel: func(v float64) string { return "x" },
	}
	g, err := MapToPlot([]model.RevenueSeries{{0, 5, 10}}, opts)
	if err != nil {
		t.Fatalf("MapToPlot: %v", err)
	}
	if g.Lines[0][2].X != 10 || g.Lines[0][2].Y != 0 {
		t.Fatalf("last point = %+v, want {10 0}", g.Lines[0][2])
	}
	if g.Labels[1].Text != "x" {
		t.Fatalf("custom formatter not used: %+v", g.Labels)
	}
}
