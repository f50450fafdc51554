//go:build cgo

// Package detect proposes avoid zones for pages by locating text
// blocks, which on comic scans are almost always speech bubbles or
// captions. Detection is powered by Tesseract through gosseract and
// therefore needs cgo; without it the package compiles to a stub that
// reports the feature as unavailable.
//
// Detection only feeds the override-JSON workflow. The batch pipeline
// never calls into this package on its own.
package detect

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/comicink/pagestamp/internal/watermark"
)

// ProposeZones runs block-level text detection on the page at path and
// returns a box around every block whose confidence clears
// minConfidence (0-1). Each box is grown by pad pixels on all sides so
// the watermark keeps some distance from the lettering; coordinates may
// go negative at page edges, which the placement feasibility test
// already treats as out of bounds.
func ProposeZones(path string, minConfidence float64, pad int) ([]watermark.Box, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("failed to get text regions: %w", err)
	}

	zones := make([]watermark.Box, 0, len(boxes))
	for _, box := range boxes {
		if float64(box.Confidence)/100.0 < minConfidence {
			continue
		}
		b := box.Box
		zones = append(zones, watermark.Box{
			X: b.Min.X - pad,
			Y: b.Min.Y - pad,
			W: b.Dx() + 2*pad,
			H: b.Dy() + 2*pad,
		})
	}
	return zones, nil
}

// Available reports whether the Tesseract backend is compiled in.
func Available() bool { return true }
