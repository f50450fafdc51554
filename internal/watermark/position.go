package watermark

import "fmt"

// Anchor names a base reference position on the page used as the
// starting point for watermark placement.
type Anchor string

// The five canonical anchors.
const (
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
	AnchorCenter      Anchor = "center"
)

// fallbackOrder is the fixed sequence of anchors tried after the
// requested one when avoid zones rule a placement out.
var fallbackOrder = []Anchor{
	AnchorBottomRight,
	AnchorBottomLeft,
	AnchorTopRight,
	AnchorTopLeft,
	AnchorCenter,
}

// ValidAnchor reports whether a names one of the five canonical anchors.
func ValidAnchor(a Anchor) bool {
	switch a {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorCenter:
		return true
	}
	return false
}

// Placement is the outcome of position selection for one page.
type Placement struct {
	// X, Y is the chosen top-left paste coordinate.
	X int `json:"x"`
	Y int `json:"y"`

	// Anchor is the anchor actually used. It differs from the requested
	// anchor when a fallback candidate produced the first clean fit.
	Anchor Anchor `json:"anchor"`

	// ObeysAvoidZones is false when no candidate anchor cleared the
	// page bounds and every avoid zone, and the selector conceded to
	// the requested anchor regardless.
	ObeysAvoidZones bool `json:"obeys_avoid_zones"`
}

// anchorPoint computes the unoffset top-left coordinate that places a
// wmW×wmH watermark margin pixels from the page edges named by anchor.
// Center ignores the margin and centers both axes.
func anchorPoint(anchor Anchor, pageW, pageH, wmW, wmH, margin int) (int, int, error) {
	switch anchor {
	case AnchorTopLeft:
		return margin, margin, nil
	case AnchorTopRight:
		return pageW - wmW - margin, margin, nil
	case AnchorBottomLeft:
		return margin, pageH - wmH - margin, nil
	case AnchorBottomRight:
		return pageW - wmW - margin, pageH - wmH - margin, nil
	case AnchorCenter:
		return (pageW - wmW) / 2, (pageH - wmH) / 2, nil
	}
	return 0, 0, fmt.Errorf("unknown anchor: %q", anchor)
}

// candidateOrder builds the anchor try order: the requested anchor
// first, then the fixed fallback sequence with the requested anchor
// removed so it is attempted exactly once.
func candidateOrder(primary Anchor) []Anchor {
	ordered := make([]Anchor, 0, len(fallbackOrder)+1)
	ordered = append(ordered, primary)
	for _, a := range fallbackOrder {
		if a != primary {
			ordered = append(ordered, a)
		}
	}
	return ordered
}

// PickPosition computes the final top-left paste coordinate for a
// wmW×wmH watermark on a pageW×pageH page.
//
// Each candidate anchor in order gets its base coordinate computed,
// shifted by (offsetX, offsetY), and tested: the placement must lie
// fully on the page and must not intersect any avoid zone. The first
// candidate that passes wins. When none passes, the requested anchor's
// coordinate is returned unconditionally with ObeysAvoidZones set to
// false — a batch must degrade gracefully rather than abort because a
// page has no zone-clean spot.
//
// An unrecognized anchor is an error.
func PickPosition(primary Anchor, pageW, pageH, wmW, wmH, margin, offsetX, offsetY int, avoid []Box) (Placement, error) {
	if !ValidAnchor(primary) {
		return Placement{}, fmt.Errorf("unknown anchor: %q", primary)
	}

	for _, anchor := range candidateOrder(primary) {
		baseX, baseY, err := anchorPoint(anchor, pageW, pageH, wmW, wmH, margin)
		if err != nil {
			return Placement{}, err
		}
		x, y := baseX+offsetX, baseY+offsetY
		if fitsInside(x, y, wmW, wmH, pageW, pageH, avoid) {
			return Placement{X: x, Y: y, Anchor: anchor, ObeysAvoidZones: true}, nil
		}
	}

	// Concede to the requested anchor so work always proceeds; the flag
	// lets the operator notice the degradation afterwards.
	baseX, baseY, _ := anchorPoint(primary, pageW, pageH, wmW, wmH, margin)
	return Placement{
		X:      baseX + offsetX,
		Y:      baseY + offsetY,
		Anchor: primary,
	}, nil
}
