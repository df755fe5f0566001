package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := len(blocks) / 2
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		idx = max(0, min(idx, len(blocks)-1))
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// LineSeries pairs a plotted line with its glyph and color.
type LineSeries struct {
	Points []model.Point
	Glyph  rune
	Color  lipgloss.Color
}

// LineChart draws plot geometry onto a width x height character grid.
// Y labels come from the geometry; xStart/xEnd label the horizontal span.
// Later series draw over earlier ones where they share a cell.
func LineChart(g model.PlotGeometry, series []LineSeries, xStart, xEnd string, width, height int) string {
	t := theme.Active
	if height < 3 {
		height = 3
	}

	labelW := 0
	for _, l := range g.Labels {
		labelW = max(labelW, lipgloss.Width(l.Text))
	}
	labelW++

	plotW := width - labelW - 1
	if plotW < 4 {
		plotW = 4
	}

	grid := newCellGrid(plotW, height)
	for _, s := range series {
		grid.plot(g.Layout, s.Points, s.Glyph, s.Color)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	rowLabels := make(map[int]string, len(g.Labels))
	for i, l := range g.Labels {
		switch i {
		case 0:
			rowLabels[0] = l.Text
		case len(g.Labels) - 1:
			rowLabels[height-1] = l.Text
		default:
			rowLabels[(height-1)/2] = l.Text
		}
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s", labelW, rowLabels[row])))
		b.WriteString(axisStyle.Render("│"))
		for col := 0; col < plotW; col++ {
			c := grid.cells[row][col]
			if c.glyph == 0 {
				b.WriteString(blank.Render(" "))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(c.color).Background(t.Surface).Render(string(c.glyph)))
		}
		b.WriteString("\n")
	}

	b.WriteString(blank.Render(strings.Repeat(" ", labelW)))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	gap := plotW - lipgloss.Width(xStart) - lipgloss.Width(xEnd)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(blank.Render(strings.Repeat(" ", labelW+1)))
	b.WriteString(labelStyle.Render(xStart))
	b.WriteString(blank.Render(strings.Repeat(" ", gap)))
	b.WriteString(labelStyle.Render(xEnd))

	return b.String()
}

type cell struct {
	glyph rune
	color lipgloss.Color
}

type cellGrid struct {
	w, h  int
	cells [][]cell
}

func newCellGrid(w, h int) *cellGrid {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &cellGrid{w: w, h: h, cells: cells}
}

// toCell converts plot coordinates into a grid column and row.
func (g *cellGrid) toCell(l model.Layout, p model.Point) (float64, float64) {
	col := 0.0
	if l.Width > 0 {
		col = (p.X - l.Left) / l.Width * float64(g.w-1)
	}
	row := float64(g.h-1) / 2
	if span := l.Bottom - l.Top; span > 0 {
		row = (p.Y - l.Top) / span * float64(g.h-1)
	}
	return col, row
}

func (g *cellGrid) set(col, row float64, glyph rune, color lipgloss.Color) {
	c := int(math.Round(col))
	r := int(math.Round(row))
	if c < 0 || c >= g.w || r < 0 || r >= g.h {
		return
	}
	g.cells[r][c] = cell{glyph: glyph, color: color}
}

// plot draws points joined by straight segments, filling every column
// between neighbours so the line has no gaps.
func (g *cellGrid) plot(l model.Layout, pts []model.Point, glyph rune, color lipgloss.Color) {
	if len(pts) == 0 {
		return
	}
	pc, pr := g.toCell(l, pts[0])
	g.set(pc, pr, glyph, color)
	for _, p := range pts[1:] {
		c, r := g.toCell(l, p)
		steps := int(math.Max(math.Abs(c-pc), math.Abs(r-pr)))
		for s := 1; s <= steps; s++ {
			f := float64(s) / float64(steps)
			g.set(pc+(c-pc)*f, pr+(r-pr)*f, glyph, color)
		}
		g.set(c, r, glyph, color)
		pc, pr = c, r
	}
}

// ShareBars renders one horizontal bar per label, scaled to the largest value.
func ShareBars(labels []string, values []float64, valueText []string, width int) string {
	if len(values) == 0 || len(labels) != len(values) {
		return ""
	}
	t := theme.Active

	nameW := 0
	for _, l := range labels {
		nameW = max(nameW, lipgloss.Width(l))
	}
	textW := 0
	for _, v := range valueText {
		textW = max(textW, lipgloss.Width(v))
	}

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}

	barMax := width - nameW - textW - 4
	if barMax < 4 {
		barMax = 4
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, v := range values {
		n := 0
		if peak > 0 && v > 0 {
			n = int(math.Round(v / peak * float64(barMax)))
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s ", nameW, labels[i])))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(blank.Render(strings.Repeat(" ", barMax-n+1)))
		txt := ""
		if i < len(valueText) {
			txt = valueText[i]
		}
		b.WriteString(valStyle.Render(fmt.Sprintf("%*s", textW, txt)))
		if i < len(values)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
