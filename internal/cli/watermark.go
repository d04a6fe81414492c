package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaiidees/riser-gacha/internal/watermark"
)

func newWatermarkCmd() *cobra.Command {
	opts := watermark.DefaultOptions()

	watermarkCmd := &cobra.Command{
		Use:   "watermark",
		Short: "Stamp the logo onto the raw asset images",
		Long: `watermark reads the per-side image directories under --input, stamps
the logo into the bottom-right corner of each image, and writes the
results under --output. The server prefers the stamped set at runtime.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			res, err := watermark.Process(opts, logger)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("processed %d images (%d skipped)", res.Processed, res.Skipped))
			return nil
		},
	}

	watermarkCmd.Flags().StringVar(&opts.InputDir, "input", opts.InputDir, "Raw asset directory")
	watermarkCmd.Flags().StringVar(&opts.OutputDir, "output", opts.OutputDir, "Output directory for stamped images")
	watermarkCmd.Flags().StringVar(&opts.LogoPath, "logo", opts.LogoPath, "Logo image path")
	watermarkCmd.Flags().Float64Var(&opts.Opacity, "opacity", opts.Opacity, "Logo opacity (0..1)")
	watermarkCmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "Logo width as a fraction of image width")
	watermarkCmd.Flags().IntVar(&opts.Margin, "margin", opts.Margin, "Corner margin in pixels")

	return watermarkCmd
}
