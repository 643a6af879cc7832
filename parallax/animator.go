// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/animator.go
// Summary: Per-frame displacement of cached blocks.

package parallax

import "math"

// Target returns the block's displacement before speed scaling.
//
// Elements inside a real wrapper move with the scroll distance past the
// wrapper top. Document-anchored elements inside the first viewport follow
// the raw scroll; the rest are measured against a virtual wrapper that
// centres the element in the viewport.
func (b Block) Target(scrollY float64, vp ViewportMetrics) float64 {
	if b.Offset.IsWrapperLegit {
		return scrollY - b.Offset.WrapperTop
	}
	if b.Offset.Abs+b.Metadata.Height.Full < vp.Height.Full {
		return scrollY
	}
	virtualTop := b.Offset.Abs - (vp.Height.Half - b.Metadata.Height.Half)
	return scrollY - virtualTop
}

// AnimateFrame writes the transform of every block whose target lies within
// cfg.Distance and then runs cfg.Callback once. It returns the number of
// nodes written.
func AnimateFrame(blocks []Block, scroll ScrollState, vp ViewportMetrics, cfg Config, property string) int {
	written := 0
	for _, b := range blocks {
		target := b.Target(scroll.CurrentY, vp)
		// distance is measured in real scroll, before speed
		if math.Abs(target) > cfg.Distance {
			continue
		}
		b.Node.SetStyle(property, ComposeTransform(target*b.Travel.Speed, b.BaseTransform))
		written++
	}
	if cfg.Callback != nil {
		cfg.Callback()
	}
	return written
}
