package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/mrrgen/internal/cli"
	"github.com/theirongolddev/mrrgen/internal/model"
	"github.com/theirongolddev/mrrgen/internal/pipeline"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print tier, monthly and summary tables",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}
	res, err := in.run()
	if err != nil {
		return err
	}

	writeProjection(os.Stdout, res)
	return nil
}

// writeProjection prints the full text report for one run.
func writeProjection(w io.Writer, res pipeline.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("MRR PROJECTION  %s - %s", res.StartLabel, res.EndLabel)))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(tierTable(res.Tiers, res.Base)))
	fmt.Fprintln(w)

	if res.Projection.Len() == 0 {
		fmt.Fprintln(w, "  No months to project.")
		return
	}

	fmt.Fprint(w, cli.RenderTable(monthTable(res)))
	fmt.Fprintln(w)

	sum := res.Summary
	fmt.Fprintln(w, cli.RenderKeyValue("Start MRR", sum.StartMRR, 12))
	fmt.Fprintln(w, cli.RenderKeyValue("Current MRR", sum.CurrentMRR, 12))
	fmt.Fprintln(w, cli.RenderKeyValue("Growth", cli.RenderGrowth(sum.Growth), 12))
	fmt.Fprintln(w, cli.RenderKeyValue("Trend", cli.RenderSparkline(res.Projection.Actual), 12))
	fmt.Fprintln(w)
}

func tierTable(tiers []model.PricingTier, base float64) cli.Table {
	rows := make([][]string, 0, len(tiers)+2)
	for _, t := range tiers {
		rows = append(rows, []string{
			t.Name,
			cli.FormatCurrency(t.UnitPrice),
			cli.FormatNumber(int64(t.Subscribers)),
			cli.FormatCurrency(t.MonthlyRevenue()),
			cli.FormatPercent(cli.Share(t.MonthlyRevenue(), base)),
		})
	}
	rows = append(rows, []string{"---"}, []string{"Base revenue", "", "", cli.FormatCurrency(base), ""})

	return cli.Table{
		Title:   "Pricing Tiers",
		Headers: []string{"Tier", "Price", "Customers", "Monthly", "Share"},
		Rows:    rows,
	}
}

func monthTable(res pipeline.Result) cli.Table {
	p := res.Projection
	rows := make([][]string, p.Len())
	for i := range rows {
		delta := 0.0
		if p.Projected[i] != 0 {
			delta = (p.Actual[i] - p.Projected[i]) / p.Projected[i] * 100
		}
		rows[i] = []string{
			cli.FormatMonth(res.Periods[i]),
			cli.FormatCurrency(p.Projected[i]),
			cli.FormatCurrency(p.Actual[i]),
			fmt.Sprintf("%+.1f%%", delta),
		}
	}
	return cli.Table{
		Title:   "Monthly",
		Headers: []string{"Month", "Projected", "Actual", "Jitter"},
		Rows:    rows,
	}
}
