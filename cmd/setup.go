package cmd

import (
	"fmt"

	"github.com/theirongolddev/mrrgen/internal/config"
	"github.com/theirongolddev/mrrgen/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		status("  Config unreadable (%v), starting from defaults\n", err)
		cfg = config.DefaultConfig()
	}

	cfg, err = tui.RunSetup(cfg)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `mrrgen setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
