package watermark

// Box is an axis-aligned rectangle in page pixel coordinates.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Intersects reports whether b and o overlap on both axes.
// Rectangles that merely touch along an edge or at a corner do not
// intersect.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W &&
		b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// fitsInside reports whether a w×h watermark pasted at (x, y) lies fully
// within a pageW×pageH page and clear of every avoid zone.
func fitsInside(x, y, w, h, pageW, pageH int, avoid []Box) bool {
	if x < 0 || y < 0 || x+w > pageW || y+h > pageH {
		return false
	}
	candidate := Box{X: x, Y: y, W: w, H: h}
	for _, zone := range avoid {
		if candidate.Intersects(zone) {
			return false
		}
	}
	return true
}
