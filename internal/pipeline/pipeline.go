// Package pipeline orchestrates batch watermarking: it enumerates
// pages, applies the per-page engine from internal/watermark, maps
// outputs onto a tree mirroring the input, and isolates per-file
// failures so one bad page never aborts a run.
package pipeline

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/comicink/pagestamp/internal/watermark"
)

// Status classifies the outcome of processing one page.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusDryRun  Status = "dry-run"
	StatusFailed  Status = "failed"
)

// FileResult records the outcome for a single page. Failures carry the
// error; successful and dry-run results carry the placement summary.
type FileResult struct {
	Path    string
	Output  string
	Status  Status
	Summary string
	Err     error
}

// Report aggregates per-file outcomes for a whole run.
type Report struct {
	Results []FileResult
	Written int
	Skipped int
	DryRun  int
	Failed  int
}

func (r *Report) add(res FileResult) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusWritten:
		r.Written++
	case StatusSkipped:
		r.Skipped++
	case StatusDryRun:
		r.DryRun++
	case StatusFailed:
		r.Failed++
	}
}

// ListPages collects the files under root whose extension matches one
// of exts (case-insensitive, leading dot optional), recursing into
// subfolders when recursive is set. Results are sorted by full path,
// case-insensitively, so batch order is deterministic across runs and
// platforms.
func ListPages(root string, exts []string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input folder not found: %s", root)
	}

	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extSet[ext] = true
	}

	var pages []string
	if recursive {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && extSet[strings.ToLower(filepath.Ext(path))] {
				pages = append(pages, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to scan input folder: %w", walkErr)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to scan input folder: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && extSet[strings.ToLower(filepath.Ext(e.Name()))] {
				pages = append(pages, filepath.Join(root, e.Name()))
			}
		}
	}

	sort.Slice(pages, func(i, j int) bool {
		return strings.ToLower(pages[i]) < strings.ToLower(pages[j])
	})
	return pages, nil
}

// OutputPathFor maps a source page to its destination beneath the
// output root, preserving the page's path relative to the input root.
// A page that does not live under the input root keeps just its
// filename. The extension follows the configured format — FormatKeep
// preserves the source extension, FormatPNG forces .png, anything else
// forces .jpg — and the suffix slots in before it.
func OutputPathFor(src, inputRoot, outputRoot, suffix string, format Format) string {
	rel, err := filepath.Rel(inputRoot, src)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(src)
	}

	ext := filepath.Ext(rel)
	stem := strings.TrimSuffix(filepath.Base(rel), ext)

	var targetExt string
	switch format {
	case FormatKeep:
		targetExt = ext
	case FormatPNG:
		targetExt = ".png"
	default:
		targetExt = ".jpg"
	}

	return filepath.Join(outputRoot, filepath.Dir(rel), stem+suffix+targetExt)
}

// composePage runs resolve → transform → place → compose for one page
// and returns the finished canvas plus the placement summary.
func composePage(pagePath string, wmBase image.Image, cfg *Config, overrides watermark.Overrides) (image.Image, string, error) {
	page, err := imaging.Open(pagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open page: %w", err)
	}

	name := filepath.Base(pagePath)
	settings := cfg.defaultSettings().Apply(watermark.Resolve(name, overrides))

	pageW := page.Bounds().Dx()
	pageH := page.Bounds().Dy()

	resized := watermark.Resize(wmBase, pageW, pageH, settings.Scale)
	ready := watermark.ApplyOpacity(resized, settings.Opacity)
	wmW, wmH := ready.Bounds().Dx(), ready.Bounds().Dy()

	pl, err := watermark.PickPosition(settings.Anchor, pageW, pageH, wmW, wmH,
		settings.Margin, settings.OffsetX, settings.OffsetY, settings.Avoid)
	if err != nil {
		return nil, "", err
	}

	canvas, summary := watermark.Compose(name, page, ready, pl, len(settings.Avoid))
	if cfg.Annotate {
		return watermark.Annotate(canvas, settings.Avoid, pl, wmW, wmH), summary, nil
	}
	return canvas, summary, nil
}

// ProcessOne runs the full sequence for a single page and, outside dry
// runs, persists the result. It reads no shared mutable state, so
// preview surfaces may call it from a background goroutine with their
// own configuration and override copies.
func ProcessOne(pagePath string, wmBase image.Image, cfg *Config, overrides watermark.Overrides) FileResult {
	canvas, summary, err := composePage(pagePath, wmBase, cfg, overrides)
	if err != nil {
		return FileResult{Path: pagePath, Status: StatusFailed, Err: err}
	}

	if cfg.DryRun {
		cfg.logf("[dry-run] %s", summary)
		return FileResult{Path: pagePath, Status: StatusDryRun, Summary: summary}
	}

	outPath := OutputPathFor(pagePath, cfg.InputRoot, cfg.OutputRoot, cfg.Suffix, cfg.Format)
	if _, err := os.Stat(outPath); err == nil && !cfg.Overwrite {
		cfg.logf("[skip exists] %s", filepath.Base(outPath))
		return FileResult{Path: pagePath, Output: outPath, Status: StatusSkipped}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return FileResult{
			Path:   pagePath,
			Output: outPath,
			Status: StatusFailed,
			Err:    fmt.Errorf("failed to create output folder: %w", err),
		}
	}
	if err := imaging.Save(canvas, outPath, imaging.JPEGQuality(cfg.Quality)); err != nil {
		return FileResult{
			Path:   pagePath,
			Output: outPath,
			Status: StatusFailed,
			Err:    fmt.Errorf("failed to save: %w", err),
		}
	}

	cfg.logf("[wrote] %s :: %s", outPath, summary)
	return FileResult{Path: pagePath, Output: outPath, Status: StatusWritten, Summary: summary}
}

// Run executes a whole batch. Fatal preconditions — missing watermark,
// missing input root, malformed override table, zero matching pages —
// abort before any per-file work begins. After that, each page is
// processed in order and failures are recorded in the report rather
// than stopping the run.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	overrides, err := watermark.LoadOverrides(cfg.OverridesPath)
	if err != nil {
		return nil, err
	}

	wmBase, err := imaging.Open(cfg.WatermarkPath)
	if err != nil {
		return nil, fmt.Errorf("watermark file not found: %s: %w", cfg.WatermarkPath, err)
	}

	pages, err := ListPages(cfg.InputRoot, cfg.Extensions, cfg.Recursive)
	if err != nil {
		return nil, err
	}
	if cfg.Sample > 0 && len(pages) > cfg.Sample {
		pages = pages[:cfg.Sample]
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no matching pages found in %s", cfg.InputRoot)
	}

	report := &Report{}
	for _, pagePath := range pages {
		res := ProcessOne(pagePath, wmBase, &cfg, overrides)
		if res.Status == StatusFailed {
			cfg.logf("[error] %s: %v", filepath.Base(res.Path), res.Err)
		}
		report.add(res)
	}
	return report, nil
}
