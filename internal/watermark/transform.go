package watermark

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales the base watermark so its width becomes scale times the
// page width, preserving the base image's aspect ratio. The scale is
// clamped to [0.01, 1.0] and both output dimensions are at least one
// pixel. Resampling uses the Lanczos filter.
//
// The page height is accepted for interface symmetry with the rest of
// the engine; only the width drives the scale.
func Resize(base image.Image, pageW, pageH int, scale float64) *image.NRGBA {
	if scale < 0.01 {
		scale = 0.01
	}
	if scale > 1.0 {
		scale = 1.0
	}

	baseW := base.Bounds().Dx()
	baseH := base.Bounds().Dy()

	targetW := int(float64(pageW) * scale)
	if targetW < 1 {
		targetW = 1
	}
	targetH := int(float64(baseH) * float64(targetW) / float64(baseW))
	if targetH < 1 {
		targetH = 1
	}

	return imaging.Resize(base, targetW, targetH, imaging.Lanczos)
}

// ApplyOpacity multiplies the watermark's alpha channel by opacity,
// clamped to [0.0, 1.0], leaving the RGB channels untouched.
//
// An opacity at or above 0.999 returns wm itself, so the common
// fully-opaque case costs no copy. Otherwise a new image is returned
// and wm is never mutated.
func ApplyOpacity(wm *image.NRGBA, opacity float64) *image.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	if opacity >= 0.999 {
		return wm
	}

	out := imaging.Clone(wm)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i]) * opacity)
	}
	return out
}
