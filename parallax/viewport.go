// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/viewport.go
// Summary: Viewport size snapshot used by the animator.

package parallax

// Extent is a length and its half.
type Extent struct {
	Full float64
	Half float64
}

func newExtent(full float64) Extent {
	return Extent{Full: full, Half: full / 2}
}

// ViewportMetrics holds the viewport size at the last measurement.
// Width is kept for a horizontal mode and is not used by the animator.
type ViewportMetrics struct {
	Height Extent
	Width  Extent
}

// MeasureViewport reads the current viewport size. Call it again after a resize.
func MeasureViewport(v ViewportPort) ViewportMetrics {
	w, h := v.Size()
	return ViewportMetrics{
		Height: newExtent(h),
		Width:  newExtent(w),
	}
}
