package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/tui/components"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tierFieldName = iota
	tierFieldPrice
	tierFieldCustomers
	tierFieldCount // sentinel
)

var tierFieldLabels = [tierFieldCount]string{"Name", "Price", "Customers"}

// ErrEmptyTierName is returned when a tier name is edited to blank.
var ErrEmptyTierName = errors.New("tier name is empty")

// tiersState tracks the tiers tab cursor and the field being edited.
type tiersState struct {
	cursor  int
	field   int
	editing bool
	input   textinput.Model
}

func (a App) updateTiersKeys(key string) (tea.Model, tea.Cmd, bool) {
	ts := &a.tierState
	switch key {
	case "j", "down":
		if ts.cursor < len(a.tiers)-1 {
			ts.cursor++
		}
	case "k", "up":
		if ts.cursor > 0 {
			ts.cursor--
		}
	case "h":
		ts.field = (ts.field - 1 + tierFieldCount) % tierFieldCount
	case "l":
		ts.field = (ts.field + 1) % tierFieldCount
	case "a":
		a.addTier()
	case "d", "x":
		a.deleteTier()
	case "enter":
		if len(a.tiers) == 0 {
			return a, nil, true
		}
		m, cmd := a.tierStartEdit()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

// addTier appends a blank tier, selects it and recomputes.
func (a *App) addTier() {
	tiers := make([]model.PricingTier, len(a.tiers), len(a.tiers)+1)
	copy(tiers, a.tiers)
	tiers = append(tiers, model.PricingTier{Name: fmt.Sprintf("Tier %d", len(tiers)+1)})
	a.tiers = tiers
	a.tierState.cursor = len(tiers) - 1
	a.tierState.field = tierFieldName
	a.recompute()
	a.setStatus("Added "+tiers[len(tiers)-1].Name, false)
}

// deleteTier removes the selected tier and recomputes.
func (a *App) deleteTier() {
	i := a.tierState.cursor
	if i < 0 || i >= len(a.tiers) {
		return
	}
	name := a.tiers[i].Name
	tiers := make([]model.PricingTier, 0, len(a.tiers)-1)
	tiers = append(tiers, a.tiers[:i]...)
	tiers = append(tiers, a.tiers[i+1:]...)
	a.tiers = tiers
	if a.tierState.cursor >= len(tiers) {
		a.tierState.cursor = max(len(tiers)-1, 0)
	}
	a.recompute()
	a.setStatus("Deleted "+name, false)
}

func (a App) tierStartEdit() (tea.Model, tea.Cmd) {
	tier := a.tiers[a.tierState.cursor]

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	switch a.tierState.field {
	case tierFieldName:
		ti.Placeholder = "Basic"
		ti.SetValue(tier.Name)
	case tierFieldPrice:
		ti.Placeholder = "9.99"
		ti.SetValue(strconv.FormatFloat(tier.UnitPrice, 'f', -1, 64))
	case tierFieldCustomers:
		ti.Placeholder = "100"
		ti.SetValue(strconv.Itoa(tier.Subscribers))
	}
	ti.Focus()

	a.tierState.input = ti
	a.tierState.editing = true
	a.status = ""
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateTierInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := a.applyTierEdit(a.tierState.input.Value()); err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.tierState.editing = false
		a.setStatus("Updated "+a.tiers[a.tierState.cursor].Name, false)
		return a, nil
	case "esc":
		a.tierState.editing = false
		a.status = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.tierState.input, cmd = a.tierState.input.Update(msg)
	return a, cmd
}

// applyTierEdit validates raw as the selected field of the selected tier.
// On success the tier list is replaced and the projection recomputed.
func (a *App) applyTierEdit(raw string) error {
	i := a.tierState.cursor
	if i < 0 || i >= len(a.tiers) {
		return nil
	}
	tier := a.tiers[i]
	val := strings.TrimSpace(raw)

	switch a.tierState.field {
	case tierFieldName:
		if val == "" {
			return ErrEmptyTierName
		}
		tier.Name = val
	case tierFieldPrice:
		p, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("price %q is not a number", val)
		}
		tier.UnitPrice = p
	case tierFieldCustomers:
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("customers %q is not a whole number", val)
		}
		tier.Subscribers = n
	}
	if err := tier.Validate(); err != nil {
		return err
	}

	tiers := make([]model.PricingTier, len(a.tiers))
	copy(tiers, a.tiers)
	tiers[i] = tier
	a.tiers = tiers
	a.recompute()
	return nil
}

func (a App) renderTiersTab(cw int) string {
	t := theme.Active
	ts := a.tierState

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedRow := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
	selectedCell := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true).Underline(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	innerW := components.CardInnerWidth(cw)
	nameW := max(innerW-2-12-12-14-3, 8)
	widths := [tierFieldCount]int{nameW, 12, 12}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %*s %*s %14s",
		nameW, tierFieldLabels[tierFieldName],
		widths[tierFieldPrice], tierFieldLabels[tierFieldPrice],
		widths[tierFieldCustomers], tierFieldLabels[tierFieldCustomers],
		"Monthly")))
	body.WriteString("\n")

	if len(a.tiers) == 0 {
		body.WriteString(mutedStyle.Render("  No tiers. Press [a] to add one."))
		body.WriteString("\n")
	}

	for i, tier := range a.tiers {
		cells := [tierFieldCount]string{
			fmt.Sprintf("%-*s", nameW, truncStr(tier.Name, nameW)),
			fmt.Sprintf("%*s", widths[tierFieldPrice], cli.FormatCurrency(tier.UnitPrice)),
			fmt.Sprintf("%*s", widths[tierFieldCustomers], cli.FormatNumber(int64(tier.Subscribers))),
		}
		monthly := fmt.Sprintf(" %14s", cli.FormatCurrency(tier.MonthlyRevenue()))

		if i != ts.cursor {
			body.WriteString(rowStyle.Render("  " + cells[0] + " " + cells[1] + " " + cells[2] + monthly))
			body.WriteString("\n")
			continue
		}

		body.WriteString(markerStyle.Render("▸ "))
		for f := 0; f < tierFieldCount; f++ {
			if f > 0 {
				body.WriteString(selectedRow.Render(" "))
			}
			switch {
			case ts.editing && f == ts.field:
				body.WriteString(ts.input.View())
			case f == ts.field:
				body.WriteString(selectedCell.Render(cells[f]))
			default:
				body.WriteString(selectedRow.Render(cells[f]))
			}
		}
		body.WriteString(selectedRow.Render(monthly))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(fmt.Sprintf("Base revenue: %s", cli.FormatCurrency(a.result.Base))))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[j/k] select  [h/l] field  [Enter] edit  [a] add  [d] delete"))

	var b strings.Builder
	b.WriteString(components.ContentCard(fmt.Sprintf("Pricing Tiers [%d]", len(a.tiers)), body.String(), cw))

	if len(a.tiers) > 0 {
		labels := make([]string, len(a.tiers))
		values := make([]float64, len(a.tiers))
		texts := make([]string, len(a.tiers))
		for i, tier := range a.tiers {
			labels[i] = truncStr(tier.Name, 16)
			values[i] = tier.MonthlyRevenue()
			texts[i] = cli.FormatCurrencyWhole(values[i]) + " " + cli.FormatPercent(cli.Share(values[i], a.result.Base))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Revenue by Tier",
			components.ShareBars(labels, values, texts, innerW), cw))
	}

	return b.String()
}
