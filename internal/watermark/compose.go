package watermark

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Compose alpha-blends the ready watermark onto a copy of the page at
// the placement coordinate, using the watermark's own alpha channel as
// the blend mask. The page is flattened to an opaque canvas first, so a
// translucent source (a PNG with its own alpha) never round-trips that
// alpha into the output. Pixels outside the watermark's footprint are
// untouched and the source page is never mutated.
//
// The summary line carries the page name, anchor used, final
// coordinate, watermark pixel size, the avoid-zone compliance flag, and
// the count of zones considered. It serves both batch logging and
// preview annotation.
func Compose(name string, page image.Image, ready *image.NRGBA, pl Placement, zoneCount int) (*image.NRGBA, string) {
	canvas := imaging.Clone(page)
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 0xff
	}
	canvas = imaging.Overlay(canvas, ready, image.Pt(pl.X, pl.Y), 1.0)

	wm := ready.Bounds()
	summary := fmt.Sprintf("%s: anchor=%s pos=(%d,%d) size=%dx%d avoid_ok=%t avoid_zones=%d",
		name, pl.Anchor, pl.X, pl.Y, wm.Dx(), wm.Dy(), pl.ObeysAvoidZones, zoneCount)

	return canvas, summary
}
