package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/config"

	"github.com/spf13/cobra"
)

// envKeys are the variables that override config file values.
var envKeys = []string{
	"MRRGEN_MONTHS",
	"MRRGEN_GROWTH_PERCENT",
	"MRRGEN_START",
	"MRRGEN_TIERS_FILE",
	"MRRGEN_PRESET",
	"MRRGEN_LOCALE",
	"MRRGEN_THEME",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Projection]")
	fmt.Printf("    Months:         %d\n", cfg.Projection.Months)
	fmt.Printf("    Growth:         %g%% per month\n", cfg.Projection.GrowthPercent)
	fmt.Printf("    Start:          %s\n", cfg.Projection.Start)
	if cfg.Projection.TiersFile != "" {
		fmt.Printf("    Tiers file:     %s\n", cfg.Projection.TiersFile)
	}
	if cfg.Projection.Preset != "" {
		fmt.Printf("    Preset:         %s\n", cfg.Projection.Preset)
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Locale:         %s\n", cfg.Display.Locale)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:          %s\n", cfg.Appearance.Theme)
	fmt.Println()

	var set []string
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			set = append(set, fmt.Sprintf("%s=%s", k, v))
		}
	}
	if len(set) > 0 {
		fmt.Println("  [Environment overrides]")
		fmt.Printf("    %s\n", strings.Join(set, "\n    "))
		fmt.Println()
	}

	fmt.Printf("  Presets: %s\n", strings.Join(config.PresetNames(), ", "))
	fmt.Println("  Run `mrrgen setup` to reconfigure.")
	return nil
}
