package watermark

import (
	"image"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Annotate draws the avoid zones and the chosen placement rectangle
// onto a copy of the canvas for operator inspection. Each zone gets a
// distinct hue so overlapping boxes stay tellable apart; the placement
// rectangle is green when the selection honors every zone and red when
// the selector had to concede.
func Annotate(canvas image.Image, zones []Box, pl Placement, wmW, wmH int) image.Image {
	dc := gg.NewContextForImage(canvas)
	dc.SetLineWidth(3)

	for i, zone := range zones {
		// Step the hue by a value coprime to 360 so consecutive zones
		// land far apart on the wheel.
		c := colorful.Hsv(float64(i*47%360), 0.85, 0.9)
		dc.SetRGBA(c.R, c.G, c.B, 0.9)
		dc.DrawRectangle(float64(zone.X), float64(zone.Y), float64(zone.W), float64(zone.H))
		dc.Stroke()
	}

	if pl.ObeysAvoidZones {
		dc.SetRGBA(0.1, 0.8, 0.2, 0.9)
	} else {
		dc.SetRGBA(0.9, 0.1, 0.1, 0.9)
	}
	dc.DrawRectangle(float64(pl.X), float64(pl.Y), float64(wmW), float64(wmH))
	dc.Stroke()

	return dc.Image()
}
