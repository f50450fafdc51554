package pipeline

import (
	"fmt"

	"github.com/comicink/pagestamp/internal/watermark"
)

// Format selects the output encoding for composited pages.
type Format string

const (
	// FormatJPEG writes .jpg files at the configured quality.
	FormatJPEG Format = "jpeg"
	// FormatPNG writes lossless .png files.
	FormatPNG Format = "png"
	// FormatKeep preserves each source file's extension.
	FormatKeep Format = "keep"
)

// Config is the per-run configuration for a batch. It is constructed
// once per invocation and never mutated while pages are processed;
// per-page variance comes only from the override layer.
type Config struct {
	// WatermarkPath locates the RGBA watermark image, loaded once per run.
	WatermarkPath string

	// InputRoot is the folder containing input pages; OutputRoot
	// receives results mirroring InputRoot's directory structure.
	InputRoot  string
	OutputRoot string

	// Extensions filters input files by suffix, case-insensitively.
	// Entries may be given with or without the leading dot.
	Extensions []string

	// Recursive scans subfolders (e.g. chapters) when set; otherwise
	// only files directly under InputRoot are considered.
	Recursive bool

	// Default placement settings, overridable per page.
	Anchor  watermark.Anchor
	OffsetX int
	OffsetY int
	Margin  int
	Scale   float64
	Opacity float64

	// Quality is the JPEG quality (1-100). Format and Suffix shape the
	// output filename.
	Quality int
	Format  Format
	Suffix  string

	// Overwrite replaces existing outputs; without it an existing
	// output path is skipped with a notice.
	Overwrite bool

	// DryRun performs every computation but never writes to disk.
	DryRun bool

	// Annotate draws avoid zones and the placement box on the output
	// so the operator can audit placements visually.
	Annotate bool

	// Sample truncates the sorted page list to the first N entries.
	// Zero means no limit.
	Sample int

	// OverridesPath locates the optional override JSON table.
	OverridesPath string

	// Log receives single-line progress, skip, and error messages.
	// A nil Log discards them.
	Log func(string)
}

// Defaults returns a Config carrying the stock settings: jpg/jpeg/png
// inputs scanned recursively, bottom-right anchor with a 16px margin,
// quarter-page-width watermark at 60% opacity, JPEG output at quality 92.
func Defaults() Config {
	return Config{
		Extensions: []string{".jpg", ".jpeg", ".png"},
		Recursive:  true,
		Anchor:     watermark.AnchorBottomRight,
		Margin:     16,
		Scale:      0.25,
		Opacity:    0.6,
		Quality:    92,
		Format:     FormatJPEG,
	}
}

// Validate checks the fields with closed domains. Scale and opacity are
// not validated here: the transform clamps them per call, so overrides
// get the same tolerance as run defaults.
func (c *Config) Validate() error {
	if c.WatermarkPath == "" {
		return fmt.Errorf("watermark path is required")
	}
	if c.InputRoot == "" {
		return fmt.Errorf("input folder is required")
	}
	if c.OutputRoot == "" {
		return fmt.Errorf("output folder is required")
	}
	if !watermark.ValidAnchor(c.Anchor) {
		return fmt.Errorf("unknown anchor: %q", c.Anchor)
	}
	switch c.Format {
	case FormatJPEG, FormatPNG, FormatKeep:
	default:
		return fmt.Errorf(`format must be "jpeg", "png", or "keep", got %q`, c.Format)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", c.Quality)
	}
	if c.Sample < 0 {
		return fmt.Errorf("sample must not be negative, got %d", c.Sample)
	}
	return nil
}

// defaultSettings seeds the effective per-page settings from the run
// configuration; overrides are applied on top, field by field.
func (c *Config) defaultSettings() watermark.Settings {
	return watermark.Settings{
		Anchor:  c.Anchor,
		OffsetX: c.OffsetX,
		OffsetY: c.OffsetY,
		Margin:  c.Margin,
		Scale:   c.Scale,
		Opacity: c.Opacity,
	}
}

func (c *Config) logf(format string, args ...any) {
	if c.Log != nil {
		c.Log(fmt.Sprintf(format, args...))
	}
}
