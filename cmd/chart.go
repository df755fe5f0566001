package cmd

import (
	"fmt"

	"github.com/theirongolddev/mrrgen/internal/tui/components"
	"github.com/theirongolddev/mrrgen/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagChartWidth  int
	flagChartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw the projection as a terminal line chart",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVarP(&flagChartWidth, "width", "w", 72, "Chart width in columns")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", 16, "Chart height in rows")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}
	res, err := in.run()
	if err != nil {
		return err
	}

	if res.Projection.Len() == 0 {
		fmt.Println("\n  No months to project.")
		return nil
	}

	t := theme.Active
	fmt.Println()
	fmt.Println(components.LineChart(res.Geometry, []components.LineSeries{
		{Points: res.ProjectedLine(), Glyph: '·', Color: t.Projected},
		{Points: res.ActualLine(), Glyph: '•', Color: t.Actual},
	}, res.StartLabel, res.EndLabel, flagChartWidth, flagChartHeight))
	fmt.Println()
	fmt.Printf("  · Projected   • Actual   %s → %s (%s)\n",
		res.Summary.StartMRR, res.Summary.CurrentMRR, res.Summary.Growth)
	return nil
}
