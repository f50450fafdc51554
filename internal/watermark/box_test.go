package watermark

import "testing"

func TestBoxIntersects(t *testing.T) {
	base := Box{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"overlapping", Box{X: 120, Y: 120, W: 50, H: 50}, true},
		{"contained", Box{X: 110, Y: 110, W: 10, H: 10}, true},
		{"containing", Box{X: 0, Y: 0, W: 500, H: 500}, true},
		{"disjoint right", Box{X: 200, Y: 100, W: 50, H: 50}, false},
		{"disjoint below", Box{X: 100, Y: 200, W: 50, H: 50}, false},
		{"touching right edge", Box{X: 150, Y: 100, W: 50, H: 50}, false},
		{"touching bottom edge", Box{X: 100, Y: 150, W: 50, H: 50}, false},
		{"touching corner", Box{X: 150, Y: 150, W: 50, H: 50}, false},
		{"one pixel overlap", Box{X: 149, Y: 149, W: 50, H: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v): got %t, want %t", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%+v): got %t, want %t", tt.other, got, tt.want)
			}
		})
	}
}

func TestFitsInside(t *testing.T) {
	zone := Box{X: 400, Y: 400, W: 100, H: 100}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"clear placement", 0, 0, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"overhangs right", 951, 0, false},
		{"overhangs bottom", 0, 951, false},
		{"exactly at far edge", 950, 950, true},
		{"overlaps zone", 380, 380, false},
		{"touches zone edge", 350, 350, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitsInside(tt.x, tt.y, 50, 50, 1000, 1000, []Box{zone})
			if got != tt.want {
				t.Errorf("fitsInside(%d,%d): got %t, want %t", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFitsInside_NoZones(t *testing.T) {
	if !fitsInside(10, 10, 50, 50, 100, 100, nil) {
		t.Error("placement within bounds and no zones should fit")
	}
}
