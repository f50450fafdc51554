package watermark

import (
	"image/color"
	"strings"
	"testing"
)

func TestCompose_PastesAtCoordinate(t *testing.T) {
	page := newSolidNRGBA(100, 100, color.NRGBA{255, 255, 255, 255})
	wm := newSolidNRGBA(10, 10, color.NRGBA{255, 0, 0, 255})
	pl := Placement{X: 20, Y: 30, Anchor: AnchorTopLeft, ObeysAvoidZones: true}

	canvas, _ := Compose("p.jpg", page, wm, pl, 0)

	if c := canvas.NRGBAAt(25, 35); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("pixel inside footprint: got (%d,%d,%d), want (255,0,0)", c.R, c.G, c.B)
	}
	if c := canvas.NRGBAAt(5, 5); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("pixel outside footprint: got (%d,%d,%d), want (255,255,255)", c.R, c.G, c.B)
	}
}

func TestCompose_DoesNotMutatePage(t *testing.T) {
	page := newSolidNRGBA(100, 100, color.NRGBA{255, 255, 255, 255})
	wm := newSolidNRGBA(10, 10, color.NRGBA{255, 0, 0, 255})

	Compose("p.jpg", page, wm, Placement{X: 20, Y: 30}, 0)

	if c := page.NRGBAAt(25, 35); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("source page mutated at (25,35): got (%d,%d,%d)", c.R, c.G, c.B)
	}
}

func TestCompose_TransparentWatermarkHasNoEffect(t *testing.T) {
	page := newSolidNRGBA(100, 100, color.NRGBA{10, 20, 30, 255})
	wm := newSolidNRGBA(10, 10, color.NRGBA{255, 0, 0, 0})

	canvas, _ := Compose("p.jpg", page, wm, Placement{X: 20, Y: 30}, 0)

	if c := canvas.NRGBAAt(25, 35); c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("fully transparent watermark changed pixels: got (%d,%d,%d)", c.R, c.G, c.B)
	}
}

func TestCompose_FlattensPageAlpha(t *testing.T) {
	page := newSolidNRGBA(40, 40, color.NRGBA{10, 20, 30, 128})
	wm := newSolidNRGBA(5, 5, color.NRGBA{255, 0, 0, 255})

	canvas, _ := Compose("p.png", page, wm, Placement{X: 10, Y: 10}, 0)

	if c := canvas.NRGBAAt(0, 0); c.A != 255 || c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("page pixel not flattened to opaque: got %+v, want {10 20 30 255}", c)
	}
	if c := canvas.NRGBAAt(12, 12); c.A != 255 || c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("watermark pixel: got %+v, want {255 0 0 255}", c)
	}
}

func TestCompose_Summary(t *testing.T) {
	page := newSolidNRGBA(100, 100, color.NRGBA{255, 255, 255, 255})
	wm := newSolidNRGBA(10, 12, color.NRGBA{255, 0, 0, 255})
	pl := Placement{X: 20, Y: 30, Anchor: AnchorBottomLeft, ObeysAvoidZones: false}

	_, summary := Compose("p01.jpg", page, wm, pl, 3)

	for _, want := range []string{
		"p01.jpg:",
		"anchor=bottom-left",
		"pos=(20,30)",
		"size=10x12",
		"avoid_ok=false",
		"avoid_zones=3",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary %q missing %q", summary, want)
		}
	}
}
