// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/parallaxdemo/render.go
// Summary: Paints the laid-out page, the status line and scroll indicators.

package parallaxdemo

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelscroll/page"
	"github.com/framegrace/texelscroll/texel"
)

// ColorAttr names a block's background colour (any tcell colour name or #rrggbb).
const ColorAttr = "data-color"

// LangAttr names the language of a <pre> block.
const LangAttr = "data-lang"

var (
	statusStyle    = tcell.StyleDefault.Reverse(true)
	errorStyle     = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite)
	indicatorStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Render implements texel.App.
func (a *App) Render() [][]texel.Cell {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf := texel.NewBuffer(a.width, a.height, tcell.StyleDefault)
	if len(buf) == 0 {
		return buf
	}
	for _, el := range a.doc.Elements() {
		if !visible(el) {
			continue
		}
		a.paintElement(buf, el)
	}
	scrollY := a.doc.ScrollY()
	drawIndicators(buf, a.viewRows, scrollY > 0, scrollY < a.doc.MaxScroll(), DefaultIndicatorConfig(indicatorStyle))
	if a.opts.ShowStatus && a.viewRows < a.height {
		a.paintStatus(buf[a.height-1])
	}
	return buf
}

// visible reports whether neither el nor an ancestor is hidden.
func visible(el *page.Element) bool {
	for e := el; e != nil; e = e.Parent() {
		if e.Hidden() {
			return false
		}
	}
	return true
}

// background returns the colour of the nearest coloured element, starting at
// el, and whether it is el's own.
func background(el *page.Element) (tcell.Color, bool) {
	for e := el; e != nil; e = e.Parent() {
		if name := e.Attr(ColorAttr); name != "" {
			if c := tcell.GetColor(name); c != tcell.ColorDefault {
				return c, e == el
			}
		}
	}
	return tcell.ColorDefault, false
}

func (a *App) paintElement(buf [][]texel.Cell, el *page.Element) {
	r := el.BoundingRect()
	top := int(math.Round(r.Y))
	left := int(math.Round(r.X))
	w := int(r.W)
	h := int(r.H)

	textStyle := tcell.StyleDefault
	if bg, own := background(el); bg != tcell.ColorDefault {
		textStyle = textStyle.Background(bg).Foreground(contrast(bg))
		if own {
			a.fill(buf, left, top, w, h, textStyle)
		}
	}

	lines := el.Lines()
	if len(lines) == 0 {
		return
	}
	pad := el.Padding()
	x := left + int(pad.Left)
	y := top + int(pad.Top)
	maxW := w - int(pad.Left) - int(pad.Right)

	if el.Tag() == "pre" {
		spans, ok := a.spans[el]
		if !ok {
			spans = a.hl.Highlight(lines, el.Attr(LangAttr))
			a.spans[el] = spans
		}
		for i, line := range spans {
			a.drawSpans(buf, x, y+i, maxW, line, textStyle)
		}
		return
	}
	for i, line := range lines {
		a.drawSpans(buf, x, y+i, maxW, []Span{{Text: line, Style: textStyle}}, textStyle)
	}
}

// fill paints a rectangle clipped to the viewport rows.
func (a *App) fill(buf [][]texel.Cell, x, y, w, h int, style tcell.Style) {
	for row := max(y, 0); row < y+h && row < a.viewRows; row++ {
		for col := max(x, 0); col < x+w && col < a.width; col++ {
			buf[row][col] = texel.Cell{Ch: ' ', Style: style}
		}
	}
}

// drawSpans writes one line clipped to maxW cells and the viewport. Span
// styles inherit the background of bg.
func (a *App) drawSpans(buf [][]texel.Cell, x, y, maxW int, spans []Span, bg tcell.Style) {
	if y < 0 || y >= a.viewRows || maxW <= 0 {
		return
	}
	_, bgColor, _ := bg.Decompose()
	used := 0
	for _, sp := range spans {
		style := sp.Style
		if bgColor != tcell.ColorDefault {
			style = style.Background(bgColor)
			if fg, _, _ := style.Decompose(); fg == tcell.ColorDefault {
				style = style.Foreground(contrast(bgColor))
			}
		}
		for _, ch := range sp.Text {
			cw := runewidth.RuneWidth(ch)
			if cw == 0 {
				continue
			}
			if used+cw > maxW {
				return
			}
			col := x + used
			if col >= 0 && col+cw <= a.width {
				buf[y][col] = texel.Cell{Ch: ch, Style: style}
				for k := 1; k < cw; k++ {
					// continuation cell of a wide rune
					buf[y][col+k] = texel.Cell{Ch: 0, Style: style}
				}
			}
			used += cw
		}
	}
}

func (a *App) paintStatus(row []texel.Cell) {
	style := statusStyle
	text := a.statusTextLocked()
	if a.engineErr != nil {
		style = errorStyle
	}
	for i := range row {
		row[i] = texel.Cell{Ch: ' ', Style: style}
	}
	text = runewidth.Truncate(text, len(row), "…")
	col := 0
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 || col+cw > len(row) {
			continue
		}
		row[col] = texel.Cell{Ch: ch, Style: style}
		col += cw
	}
}

func (a *App) statusTextLocked() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " %s  %d/%d", a.GetTitle(), int(a.doc.ScrollY()), int(a.doc.MaxScroll()))
	switch {
	case a.engineErr != nil:
		fmt.Fprintf(&sb, "  error: %v", a.engineErr)
	case a.engine != nil:
		frames, writes := a.engine.Stats()
		state := "stopped"
		if a.engine.Running() {
			state = "running"
		}
		fmt.Fprintf(&sb, "  %s  frames %d  writes %d  blocks %d", state, frames, writes, len(a.engine.Blocks()))
	}
	sb.WriteString("  [↑↓ PgUp PgDn r q]")
	return sb.String()
}

// contrast picks black or white text for a background colour.
func contrast(bg tcell.Color) tcell.Color {
	r, g, b := bg.RGB()
	if r < 0 {
		return tcell.ColorDefault
	}
	// Rec. 601 luma
	if 299*r+587*g+114*b > 128000 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
