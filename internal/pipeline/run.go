package pipeline

import (
	"fmt"
	"time"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/model"
)

// Result is one complete pipeline run. It is built in full before Run
// returns, so callers never render a partially computed chart.
type Result struct {
	Tiers      []model.PricingTier
	Params     model.ProjectionParams
	Base       float64
	Projection model.Projection
	Geometry   model.PlotGeometry
	Summary    model.Summary
	Periods    []time.Time
	StartLabel string
	EndLabel   string
}

// Run aggregates tiers, projects them forward, and maps both series onto
// one plot. The projected series is line 0 and the actual series is line 1.
func Run(tiers []model.PricingTier, p model.ProjectionParams, rnd RandSource, opts MapOptions) (Result, error) {
	base := ComputeBaseRevenue(tiers)
	proj := ProjectSeries(base, p, rnd)

	geom, err := MapToPlot([]model.RevenueSeries{proj.Projected, proj.Actual}, opts)
	if err != nil {
		return Result{}, fmt.Errorf("mapping projection: %w", err)
	}

	owned := make([]model.PricingTier, len(tiers))
	copy(owned, tiers)

	return Result{
		Tiers:      owned,
		Params:     p,
		Base:       base,
		Projection: proj,
		Geometry:   geom,
		Summary:    Summarize(proj),
		Periods:    p.Periods(),
		StartLabel: cli.FormatMonth(model.MonthStart(p.Start)),
		EndLabel:   cli.FormatMonth(p.End()),
	}, nil
}

// ProjectedLine returns the plotted projected series.
func (r Result) ProjectedLine() []model.Point {
	return r.Geometry.Lines[0]
}

// ActualLine returns the plotted actual series.
func (r Result) ActualLine() []model.Point {
	return r.Geometry.Lines[1]
}
