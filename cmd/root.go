// Package cmd implements the mrrgen CLI commands.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/config"
	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/pipeline"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagTiers     []string
	flagTiersFile string
	flagPreset    string
	flagMonths    int
	flagGrowth    float64
	flagStart     string
	flagSeed      uint64
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "mrrgen",
	Short: "Monthly recurring revenue projections",
	Long:  "Project monthly recurring revenue from pricing tiers and chart it in the terminal.",
	RunE:  runProject,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig().Projection

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVar(&flagTiers, "tier", nil, "Pricing tier as name:price:customers (repeatable)")
	pf.StringVar(&flagTiersFile, "tiers-file", "", "TOML file of [[tier]] entries")
	pf.StringVar(&flagPreset, "preset", "", "Built-in tier preset")
	pf.IntVarP(&flagMonths, "months", "n", defaults.Months, "Months to project")
	pf.Float64VarP(&flagGrowth, "growth", "g", defaults.GrowthPercent, "Monthly growth rate in percent")
	pf.StringVarP(&flagStart, "start", "s", defaults.Start, "First projected month (YYYY-MM)")
	pf.Uint64Var(&flagSeed, "seed", 0, "Seed for the actual-series jitter (0 = random)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

// inputs is everything a command needs to run the pipeline.
type inputs struct {
	cfg    config.Config
	tiers  []model.PricingTier
	params model.ProjectionParams
	seed   uint64
}

func (in inputs) source() pipeline.RandSource {
	if in.seed == 0 {
		return nil
	}
	return pipeline.NewSeededSource(in.seed)
}

func (in inputs) run() (pipeline.Result, error) {
	res, err := pipeline.Run(in.tiers, in.params, in.source(), pipeline.MapOptions{})
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("running projection: %w", err)
	}
	return res, nil
}

// resolveInputs layers flags over MRRGEN_* env over the config file over
// defaults, then loads tiers and applies locale and theme.
func resolveInputs(cmd *cobra.Command) (inputs, error) {
	cfg, err := config.Load()
	if err != nil {
		return inputs{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("months") {
		cfg.Projection.Months = flagMonths
	}
	if flags.Changed("growth") {
		cfg.Projection.GrowthPercent = flagGrowth
	}
	if flags.Changed("start") {
		cfg.Projection.Start = flagStart
	}
	if flags.Changed("tiers-file") {
		cfg.Projection.TiersFile = flagTiersFile
	}
	if flags.Changed("preset") {
		cfg.Projection.Preset = flagPreset
	}

	if err := cfg.Projection.Validate(); err != nil {
		return inputs{}, err
	}
	start, err := config.ParseStart(cfg.Projection.Start)
	if err != nil {
		return inputs{}, err
	}

	tiers, err := resolveTiers(cfg.Projection)
	if err != nil {
		return inputs{}, err
	}

	if err := cli.SetLocale(cfg.Display.Locale); err != nil {
		log.Printf("warning: %v, using en-US", err)
	}
	theme.SetActive(cfg.Appearance.Theme)

	return inputs{
		cfg:   cfg,
		tiers: tiers,
		params: model.ProjectionParams{
			MonthsAhead:       cfg.Projection.Months,
			GrowthRatePercent: cfg.Projection.GrowthPercent,
			Start:             start,
		},
		seed: flagSeed,
	}, nil
}

// resolveTiers picks the tier source: --tier flags, then a tiers file,
// then a preset, then the single default tier.
func resolveTiers(p config.ProjectionConfig) ([]model.PricingTier, error) {
	if len(flagTiers) > 0 {
		tiers := make([]model.PricingTier, 0, len(flagTiers))
		for _, s := range flagTiers {
			t, err := config.ParseTierFlag(s)
			if err != nil {
				return nil, err
			}
			tiers = append(tiers, t)
		}
		return tiers, nil
	}

	if p.TiersFile != "" {
		tiers, err := config.LoadTiers(p.TiersFile)
		if err != nil {
			return nil, err
		}
		status("  Loaded %d tiers from %s\n", len(tiers), p.TiersFile)
		return tiers, nil
	}

	if p.Preset != "" {
		tiers, ok := config.LookupPreset(p.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (have %v)", p.Preset, config.PresetNames())
		}
		return tiers, nil
	}

	return model.DefaultTiers(), nil
}

// status prints a progress line to stderr unless --quiet is set.
func status(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
