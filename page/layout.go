// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/layout.go
// Summary: Block-flow layout in terminal cells.
// Notes: Blocks stack vertically with no margin collapsing. Text wraps to the
// content width, so a width change can change every height below it.

package page

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"

	"github.com/framegrace/texelscroll/parallax"
)

var hiddenTags = map[string]bool{
	"head": true, "script": true, "style": true, "title": true,
	"meta": true, "link": true, "template": true, "noscript": true,
}

const tabWidth = 4

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "br": true, "code": true, "em": true,
	"i": true, "kbd": true, "mark": true, "q": true, "s": true, "samp": true,
	"small": true, "span": true, "strong": true, "sub": true, "sup": true,
	"u": true, "var": true,
}

func (d *Document) layout() {
	d.contentHeight = d.layoutBlock(d.body, 0, 0, d.width)
}

// layoutBlock places el with its outer top edge at y and returns its outer height.
func (d *Document) layoutBlock(el *Element, x, y, avail float64) float64 {
	if el.hidden {
		el.box = parallax.Rect{X: x, Y: y}
		el.lines = nil
		return 0
	}

	el.margin = el.style.edges("margin")
	el.padding = el.style.edges("padding")

	el.box.X = x + el.margin.Left
	el.box.Y = y + el.margin.Top
	if w, ok := el.style.length("width"); ok {
		el.box.W = math.Max(0, w)
	} else {
		el.box.W = math.Max(0, avail-el.margin.Left-el.margin.Right)
	}

	contentX := el.box.X + el.padding.Left
	contentW := math.Max(0, el.box.W-el.padding.Left-el.padding.Right)

	el.lines = wrapText(ownText(el.node), int(contentW), el.Tag() == "pre")

	cursor := el.box.Y + el.padding.Top + float64(len(el.lines))
	for _, child := range el.children {
		cursor += d.layoutBlock(child, contentX, cursor, contentW)
	}

	if h, ok := el.style.length("height"); ok {
		el.box.H = math.Max(0, h)
	} else {
		el.box.H = cursor + el.padding.Bottom - el.box.Y
	}
	return el.margin.Top + el.box.H + el.margin.Bottom
}

// ownText collects the text of n that is not inside a block child. Inline
// elements contribute their text and <br> a line break.
func ownText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				sb.WriteString(c.Data)
			case c.Type == html.ElementNode && c.Data == "br":
				sb.WriteByte('\n')
			case c.Type == html.ElementNode && inlineTags[c.Data]:
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}

// wrapText splits text into display lines. Preformatted text keeps its lines
// as written; other text collapses whitespace and wraps at word boundaries to
// width cells. Words wider than the line are broken by cell.
func wrapText(text string, width int, pre bool) []string {
	if pre {
		text = strings.TrimRight(text, "\n")
		if strings.TrimSpace(text) == "" {
			return nil
		}
		lines := strings.Split(text, "\n")
		for i, l := range lines {
			lines[i] = expandTabs(l)
		}
		return lines
	}

	var lines []string
	for _, segment := range strings.Split(text, "\n") {
		words := strings.Fields(segment)
		if len(words) == 0 {
			continue
		}
		if width <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}
		lines = append(lines, wrapWords(words, width)...)
	}
	return lines
}

func wrapWords(words []string, width int) []string {
	var lines []string
	var line strings.Builder
	used := 0
	flush := func() {
		if used > 0 {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
	}
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			flush()
			parts := strings.Split(runewidth.Wrap(w, width), "\n")
			lines = append(lines, parts[:len(parts)-1]...)
			w = parts[len(parts)-1]
			ww = runewidth.StringWidth(w)
		} else if used > 0 && used+1+ww > width {
			flush()
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(w)
		used += ww
	}
	flush()
	return lines
}

// expandTabs replaces tabs with spaces up to the next multiple of tabWidth cells.
func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
