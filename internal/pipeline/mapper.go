package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/model"
)

// Programmer errors returned by MapToPlot.
var (
	ErrNoSeries       = errors.New("no series to plot")
	ErrLengthMismatch = errors.New("series lengths differ")
)

// MapOptions customizes MapToPlot. The zero value uses DefaultLayout and
// whole-currency labels.
type MapOptions struct {
	Layout      model.Layout
	FormatLabel func(float64) string
}

func (o MapOptions) withDefaults() MapOptions {
	if o.Layout == (model.Layout{}) {
		o.Layout = model.DefaultLayout
	}
	if o.FormatLabel == nil {
		o.FormatLabel = cli.FormatCurrencyWhole
	}
	return o
}

// MapToPlot places every series on one shared vertical scale computed from
// the union of their values, and builds three Y-axis labels (max, mid, min).
// All series must have the same length.
func MapToPlot(series []model.RevenueSeries, opts MapOptions) (model.PlotGeometry, error) {
	if len(series) == 0 {
		return model.PlotGeometry{}, ErrNoSeries
	}
	n := len(series[0])
	for i, s := range series[1:] {
		if len(s) != n {
			return model.PlotGeometry{}, fmt.Errorf("%w: series 0 has %d points, series %d has %d",
				ErrLengthMismatch, n, i+1, len(s))
		}
	}

	opts = opts.withDefaults()
	lo, hi := valueRange(series)

	g := model.PlotGeometry{
		Min:    lo,
		Max:    hi,
		Layout: opts.Layout,
		Lines:  make([][]model.Point, len(series)),
	}

	for i, s := range series {
		line := make([]model.Point, len(s))
		for k, v := range s {
			line[k] = model.Point{X: xPosition(opts.Layout, k, len(s)), Y: g.Normalize(v)}
		}
		g.Lines[i] = line
	}

	mid := lo + (hi-lo)/2
	g.Labels = []model.AxisLabel{
		{Value: hi, Text: opts.FormatLabel(hi)},
		{Value: mid, Text: opts.FormatLabel(mid)},
		{Value: lo, Text: opts.FormatLabel(lo)},
	}
	return g, nil
}

// valueRange returns min and max over all finite values. With nothing finite
// to look at, the range is [0, 0].
func valueRange(series []model.RevenueSeries) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// xPosition spreads n points evenly across the layout width. A single point
// sits at the left edge.
func xPosition(l model.Layout, k, n int) float64 {
	if n <= 1 {
		return l.Left
	}
	return l.Left + float64(k)*(l.Width/float64(n-1))
}
