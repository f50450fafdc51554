// Package watermark implements the placement-and-compositing engine for
// bulk page watermarking.
//
// The engine turns one source page plus one watermark image into a
// composited canvas in four steps: resolve per-page override settings,
// transform the watermark (resize relative to the page width, apply an
// opacity multiplier to its alpha channel), select a paste position, and
// alpha-composite the result.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner: X increases rightward, Y increases downward. Boxes are
// expressed as (x, y, width, height) in page coordinates.
//
// # Position Selection
//
// Placement starts from a named anchor (one of the four corners or the
// center) inset by a margin and shifted by an offset. When the page
// carries avoid zones — rectangles the watermark must not overlap, such
// as speech bubbles — the selector walks a fixed fallback order of
// anchors looking for a placement that stays on the page and clear of
// every zone. If no anchor qualifies, it falls back to the requested
// anchor anyway and flags the placement as degraded; a batch run never
// stalls because a page has no clean spot.
//
// # Thread Safety
//
// The package holds no state. Every function returns new image data and
// never mutates its inputs, so independent calls are safe from
// concurrent goroutines as long as callers do not share mutable images.
package watermark
