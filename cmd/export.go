package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/mrrgen/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportOut    string
	flagExportWidth  int
	flagExportHeight int
	flagExportTitle  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the projection chart to an SVG or PNG file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "mrr.svg", "Output file (.svg or .png)")
	exportCmd.Flags().IntVar(&flagExportWidth, "width", 1024, "Image width in pixels")
	exportCmd.Flags().IntVar(&flagExportHeight, "height", 512, "Image height in pixels")
	exportCmd.Flags().StringVar(&flagExportTitle, "title", "", "Chart title")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	format, err := export.FormatFromPath(flagExportOut)
	if err != nil {
		return err
	}

	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}
	res, err := in.run()
	if err != nil {
		return err
	}

	f, err := os.Create(flagExportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagExportOut, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", flagExportOut, cerr)
		}
		if err != nil {
			_ = os.Remove(flagExportOut)
		}
	}()

	err = export.Render(f, res, export.Options{
		Format: format,
		Width:  flagExportWidth,
		Height: flagExportHeight,
		Title:  flagExportTitle,
	})
	if errors.Is(err, export.ErrTooFewPoints) {
		return fmt.Errorf("%w (got %d)", err, res.Projection.Len())
	}
	if err != nil {
		return err
	}

	status("  Wrote %s (%s - %s)\n", flagExportOut, res.StartLabel, res.EndLabel)
	return nil
}
