package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/config"
	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const presetKeep = "keep current tiers"

// setupValues receives the first-run form answers.
type setupValues struct {
	Preset string
	Months string
	Growth string
	Start  string
	Theme  string
}

func newSetupForm(cfg config.Config, v *setupValues) *huh.Form {
	v.Preset = presetKeep
	v.Months = strconv.Itoa(cfg.Projection.Months)
	v.Growth = strconv.FormatFloat(cfg.Projection.GrowthPercent, 'f', -1, 64)
	v.Start = cfg.Projection.Start
	v.Theme = cfg.Appearance.Theme

	presets := append([]string{presetKeep}, config.PresetNames()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to mrrgen").
				Description("Set the defaults used for new projections.\nRun `mrrgen setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Starting tiers").
				Options(huh.NewOptions(presets...)...).
				Value(&v.Preset),
			huh.NewInput().
				Title("Projection months").
				Value(&v.Months).
				Validate(validateMonths),
			huh.NewInput().
				Title("Monthly growth (%)").
				Value(&v.Growth).
				Validate(validateGrowth),
			huh.NewInput().
				Title("Start month (YYYY-MM)").
				Value(&v.Start).
				Validate(func(s string) error {
					_, err := config.ParseStart(strings.TrimSpace(s))
					return err
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func validateMonths(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || config.ValidateMonths(n) != nil {
		return fmt.Errorf("enter a whole number from 0 to %d", config.MaxMonths)
	}
	return nil
}

func validateGrowth(s string) error {
	g, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if config.ValidateGrowth(g) != nil {
		return fmt.Errorf("growth must be finite and at least %d%%", config.MinGrowthPercent)
	}
	return nil
}

// applySetupValues copies validated form answers into cfg.
func applySetupValues(cfg config.Config, v setupValues) config.Config {
	if n, err := strconv.Atoi(strings.TrimSpace(v.Months)); err == nil {
		cfg.Projection.Months = n
	}
	if g, err := strconv.ParseFloat(strings.TrimSpace(v.Growth), 64); err == nil {
		cfg.Projection.GrowthPercent = g
	}
	if s := strings.TrimSpace(v.Start); s != "" {
		cfg.Projection.Start = s
	}
	if v.Preset != presetKeep {
		cfg.Projection.Preset = v.Preset
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	return cfg
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.finishSetup()
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// finishSetup applies the form to the running app and saves it.
func (a *App) finishSetup() {
	a.cfg = applySetupValues(a.cfg, a.setupVals)
	a.needSetup = false
	a.setupForm = nil

	theme.SetActive(a.cfg.Appearance.Theme)
	a.params = model.ProjectionParams{
		MonthsAhead:       a.cfg.Projection.Months,
		GrowthRatePercent: a.cfg.Projection.GrowthPercent,
		Start:             a.cfg.Projection.StartTime(),
	}
	if tiers, ok := config.LookupPreset(a.setupVals.Preset); ok {
		a.tiers = tiers
		a.tierState.cursor = 0
	}
	a.recompute()

	if a.saveConfig != nil {
		if err := a.saveConfig(a.cfg); err != nil {
			a.setStatus(fmt.Sprintf("Could not save config: %s", err), true)
			return
		}
		a.setStatus("Saved to "+config.Path(), false)
	}
}

// RunSetup shows the setup form on its own and returns cfg with the
// answers applied.
func RunSetup(cfg config.Config) (config.Config, error) {
	var v setupValues
	if err := newSetupForm(cfg, &v).Run(); err != nil {
		return cfg, err
	}
	return applySetupValues(cfg, v), nil
}
