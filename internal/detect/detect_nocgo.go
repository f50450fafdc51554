//go:build !cgo

// Package detect proposes avoid zones for pages by locating text
// blocks. This build lacks cgo, so the Tesseract backend is absent and
// every call reports the feature as unavailable.
package detect

import (
	"errors"

	"github.com/comicink/pagestamp/internal/watermark"
)

// ErrUnavailable is returned when the binary was built without cgo.
var ErrUnavailable = errors.New("text detection requires a cgo build with Tesseract installed")

// ProposeZones always fails on non-cgo builds.
func ProposeZones(path string, minConfidence float64, pad int) ([]watermark.Box, error) {
	return nil, ErrUnavailable
}

// Available reports whether the Tesseract backend is compiled in.
func Available() bool { return false }
