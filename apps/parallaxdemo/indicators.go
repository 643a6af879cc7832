// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/parallaxdemo/indicators.go
// Summary: Scroll indicator glyphs (▲/▼) shown when the page overflows.

package parallaxdemo

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/texel"
)

// IndicatorPosition specifies where scroll indicators are rendered.
type IndicatorPosition int

const (
	// IndicatorRight places indicators at the right edge of the viewport (default).
	IndicatorRight IndicatorPosition = iota
	// IndicatorLeft places indicators at the left edge of the viewport.
	IndicatorLeft
)

// Default indicator glyphs.
const (
	DefaultUpGlyph   = '▲'
	DefaultDownGlyph = '▼'
)

// IndicatorConfig configures the appearance of scroll indicators.
type IndicatorConfig struct {
	Position  IndicatorPosition
	Style     tcell.Style
	UpGlyph   rune
	DownGlyph rune
}

// DefaultIndicatorConfig returns a default configuration with standard glyphs.
func DefaultIndicatorConfig(style tcell.Style) IndicatorConfig {
	return IndicatorConfig{
		Position:  IndicatorRight,
		Style:     style,
		UpGlyph:   DefaultUpGlyph,
		DownGlyph: DefaultDownGlyph,
	}
}

// drawIndicators marks the first and last viewport rows when content lies
// above or below. rows is the viewport height within buf.
func drawIndicators(buf [][]texel.Cell, rows int, canUp, canDown bool, config IndicatorConfig) {
	if rows <= 0 || rows > len(buf) || len(buf[0]) == 0 {
		return
	}
	x := len(buf[0]) - 1
	if config.Position == IndicatorLeft {
		x = 0
	}
	if canUp {
		glyph := config.UpGlyph
		if glyph == 0 {
			glyph = DefaultUpGlyph
		}
		buf[0][x] = texel.Cell{Ch: glyph, Style: config.Style}
	}
	if canDown {
		glyph := config.DownGlyph
		if glyph == 0 {
			glyph = DefaultDownGlyph
		}
		buf[rows-1][x] = texel.Cell{Ch: glyph, Style: config.Style}
	}
}
