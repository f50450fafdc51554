package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comicink/pagestamp/internal/pipeline"
	"github.com/comicink/pagestamp/internal/watermark"
)

var rootCmd = &cobra.Command{
	Use:   "pagestamp",
	Short: "Add a PNG watermark onto one or many comic pages",
	Long: `pagestamp batch-applies a translucent PNG watermark onto page scans,
writing results to an output folder that mirrors the input's structure.

Placement starts from a named anchor and falls back to other corners
when per-file avoid zones (speech bubbles) would be covered.

Example:
  pagestamp -w logo.png -i ./scans -o ./out --anchor bottom-right --scale 0.2 \
    --avoid-json zones.json`,
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("watermark", "w", "", "PNG watermark with transparency (required)")
	flags.StringP("input", "i", "", "folder containing input pages (required)")
	flags.StringP("output", "o", "", "folder to write watermarked pages (required)")
	flags.StringSlice("extensions", []string{".jpg", ".jpeg", ".png"}, "file extensions to process")
	flags.Bool("recursive", true, "scan input subfolders (e.g. chapters) recursively")
	flags.String("anchor", "bottom-right", "base anchor position (top-left|top-right|bottom-left|bottom-right|center)")
	flags.Int("offset-x", 0, "horizontal pixel offset applied after anchoring")
	flags.Int("offset-y", 0, "vertical pixel offset applied after anchoring")
	flags.Int("margin", 16, "margin in pixels from the anchored edge")
	flags.Float64("scale", 0.25, "watermark width as a fraction of the page width")
	flags.Float64("opacity", 0.6, "opacity multiplier for the watermark alpha channel (0-1)")
	flags.Int("quality", 92, "JPEG quality for output")
	flags.String("format", "jpeg", `output format: "jpeg", "png", or "keep"`)
	flags.String("suffix", "", "suffix inserted before the file extension in output names")
	flags.Bool("overwrite", false, "overwrite outputs if they already exist")
	flags.Bool("dry-run", false, "compute positions but do not write files")
	flags.Bool("annotate", false, "draw avoid zones and the placement box on outputs")
	flags.Int("sample", 0, "process only the first N files after sorting (0 = all)")
	flags.String("avoid-json", "", "JSON with per-file overrides and avoid zones")
	flags.Bool("debug", false, "enable debug logging")

	rootCmd.MarkFlagRequired("watermark")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")

	viper.SetEnvPrefix("pagestamp")
	viper.AutomaticEnv()
	viper.BindPFlags(flags)
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(viper.GetBool("debug"))

	cfg := pipeline.Defaults()
	cfg.WatermarkPath = viper.GetString("watermark")
	cfg.InputRoot = viper.GetString("input")
	cfg.OutputRoot = viper.GetString("output")
	cfg.Extensions = viper.GetStringSlice("extensions")
	cfg.Recursive = viper.GetBool("recursive")
	cfg.Anchor = watermark.Anchor(viper.GetString("anchor"))
	cfg.OffsetX = viper.GetInt("offset-x")
	cfg.OffsetY = viper.GetInt("offset-y")
	cfg.Margin = viper.GetInt("margin")
	cfg.Scale = viper.GetFloat64("scale")
	cfg.Opacity = viper.GetFloat64("opacity")
	cfg.Quality = viper.GetInt("quality")
	cfg.Format = pipeline.Format(viper.GetString("format"))
	cfg.Suffix = viper.GetString("suffix")
	cfg.Overwrite = viper.GetBool("overwrite")
	cfg.DryRun = viper.GetBool("dry-run")
	cfg.Annotate = viper.GetBool("annotate")
	cfg.Sample = viper.GetInt("sample")
	cfg.OverridesPath = viper.GetString("avoid-json")
	cfg.Log = func(line string) { logger.Info().Msg(line) }

	report, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Int("written", report.Written).
		Int("skipped", report.Skipped).
		Int("dry_run", report.DryRun).
		Int("failed", report.Failed).
		Msg("batch complete")

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d pages failed", report.Failed, len(report.Results))
	}
	return nil
}
