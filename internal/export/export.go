// Package export renders a projection as an SVG or PNG line chart.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/mrrgen/internal/pipeline"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

var (
	// ErrTooFewPoints is returned when a projection has fewer than two months.
	ErrTooFewPoints = errors.New("need at least two months to draw a chart")
	// ErrUnknownFormat is returned for formats other than svg and png.
	ErrUnknownFormat = errors.New("unknown export format")
)

var (
	projectedColor = drawing.ColorFromHex("9CA3AF")
	actualColor    = drawing.ColorFromHex("6366F1")
)

// Options controls the rendered image.
type Options struct {
	Format Format
	Width  int
	Height int
	Title  string
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = SVG
	}
	if o.Width <= 0 {
		o.Width = 1024
	}
	if o.Height <= 0 {
		o.Height = 512
	}
	if o.Title == "" {
		o.Title = "Monthly Recurring Revenue"
	}
	return o
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Render draws the projected and actual series of res to w.
func Render(w io.Writer, res pipeline.Result, opts Options) error {
	opts = opts.withDefaults()

	var provider chart.RendererProvider
	switch opts.Format {
	case SVG:
		provider = chart.SVG
	case PNG:
		provider = chart.PNG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	if res.Projection.Len() < 2 {
		return ErrTooFewPoints
	}

	months := make([]time.Time, res.Projection.Len())
	copy(months, res.Periods)

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2006"),
		},
		YAxis: yAxis(res),
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Projected",
				XValues: months,
				YValues: []float64(res.Projection.Projected),
				Style: chart.Style{
					StrokeColor:     projectedColor,
					StrokeWidth:     2,
					StrokeDashArray: []float64{6, 4},
				},
			},
			chart.TimeSeries{
				Name:    "Actual",
				XValues: months,
				YValues: []float64(res.Projection.Actual),
				Style: chart.Style{
					StrokeColor: actualColor,
					StrokeWidth: 2.5,
					DotColor:    actualColor,
					DotWidth:    3,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", opts.Format, err)
	}
	return nil
}

// yAxis uses the plot geometry's range and tick labels so the image
// matches the terminal chart. A flat range is widened by 1% of its value.
func yAxis(res pipeline.Result) chart.YAxis {
	g := res.Geometry
	lo, hi := g.Min, g.Max
	if g.Degenerate() {
		pad := max(abs(lo)*0.01, 1)
		lo, hi = lo-pad, hi+pad
	}

	ticks := make([]chart.Tick, 0, len(g.Labels))
	for i := len(g.Labels) - 1; i >= 0; i-- {
		ticks = append(ticks, chart.Tick{Value: g.Labels[i].Value, Label: g.Labels[i].Text})
	}

	return chart.YAxis{
		Range: &chart.ContinuousRange{Min: lo, Max: hi},
		Ticks: ticks,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
