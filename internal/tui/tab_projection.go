package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/tui/components"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	projectedGlyph = '·'
	actualGlyph    = '•'
)

func (a App) renderProjectionTab(cw, contentH int) string {
	t := theme.Active
	res := a.result
	sum := res.Summary

	var b strings.Builder

	cards := []components.Metric{
		{Label: "Current MRR", Value: sum.CurrentMRR, Delta: sum.Growth},
		{Label: "Start MRR", Value: sum.StartMRR, Delta: res.StartLabel},
		{Label: "Base Revenue", Value: cli.FormatCurrency(res.Base), Delta: fmt.Sprintf("%d tiers", len(res.Tiers))},
		{Label: "Growth Rate", Value: fmt.Sprintf("%.1f%%/mo", res.Params.GrowthRatePercent), Delta: fmt.Sprintf("%d months", res.Projection.Len())},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if res.Projection.Len() == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		b.WriteString(components.ContentCard("Monthly Recurring Revenue", muted.Render("No months to project."), cw))
		return b.String()
	}

	// cards take 4-5 rows; card borders, title and legend take 5 more
	chartH := max(contentH-lipgloss.Height(b.String())-7, 4)

	chart := components.LineChart(res.Geometry, []components.LineSeries{
		{Points: res.ProjectedLine(), Glyph: projectedGlyph, Color: t.Projected},
		{Points: res.ActualLine(), Glyph: actualGlyph, Color: t.Actual},
	}, res.StartLabel, res.EndLabel, components.CardInnerWidth(cw), chartH)

	b.WriteString(components.ContentCard("Monthly Recurring Revenue", chart+"\n"+legend(), cw))
	return b.String()
}

func legend() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	proj := lipgloss.NewStyle().Foreground(t.Projected).Background(t.Surface)
	act := lipgloss.NewStyle().Foreground(t.Actual).Background(t.Surface)

	return proj.Render(string(projectedGlyph)) + muted.Render(" Projected   ") +
		act.Render(string(actualGlyph)) + muted.Render(" Actual")
}
