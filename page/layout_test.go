// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		pre   bool
		want  []string
	}{
		{"fits", "hello world", 11, false, []string{"hello world"}},
		{"word boundary", "hello world again", 11, false, []string{"hello world", "again"}},
		{"collapses whitespace", "  a   b \n c", 10, false, []string{"a b", "c"}},
		{"long word", "abcdefghij", 4, false, []string{"abcd", "efgh", "ij"}},
		{"long word then short", "abcdef g", 4, false, []string{"abcd", "ef g"}},
		{"wide runes", "日本語 ab", 6, false, []string{"日本語", "ab"}},
		{"no width", "a   b", 0, false, []string{"a b"}},
		{"blank", " \n\t ", 10, false, nil},
		{"pre keeps lines", "  x\n  y\n", 2, true, []string{"  x", "  y"}},
		{"pre blank", "\n  \n", 10, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrapText(tc.text, tc.width, tc.pre))
		})
	}
}

const layoutPage = `<html><head><title> Demo </title><style>p { color: red }</style></head><body>
<div id="a" class="scrollar big" style="height: 4; margin: 1 0">x</div>
<p id="b">hello <em>world</em></p>
<div id="hidden" style="display: none"><p>gone</p></div>
<section id="s" style="padding: 1 2; margin-top: 2"><div id="inner" style="height: 3"></div></section>
</body></html>`

func TestLayoutStacksBlocks(t *testing.T) {
	doc, err := ParseString(layoutPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc.Resize(20, 10)

	a := doc.Find("#a")
	assert.Equal(t, 1.0, a.Box().Y)
	assert.Equal(t, 4.0, a.Box().H)
	assert.Equal(t, 20.0, a.Box().W)
	assert.Equal(t, []string{"x"}, a.Lines())

	b := doc.Find("#b")
	assert.Equal(t, 6.0, b.Box().Y)
	assert.Equal(t, []string{"hello world"}, b.Lines())
	assert.Equal(t, 1.0, b.Box().H)

	hidden := doc.Find("#hidden")
	assert.True(t, hidden.Hidden())
	assert.Equal(t, 0.0, hidden.Box().H)

	s := doc.Find("#s")
	assert.Equal(t, 9.0, s.Box().Y)
	assert.Equal(t, 5.0, s.Box().H)
	assert.Equal(t, Edges{1, 2, 1, 2}, s.Padding())

	inner := doc.Find("#inner")
	assert.Equal(t, 10.0, inner.Box().Y)
	assert.Equal(t, 2.0, inner.Box().X)
	assert.Equal(t, 16.0, inner.Box().W)

	assert.Equal(t, 14.0, doc.ContentHeight())
	assert.Equal(t, 4.0, doc.MaxScroll())
}

func TestLayoutRewrapsOnResize(t *testing.T) {
	doc, err := ParseString(layoutPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc.Resize(20, 10)
	doc.Resize(10, 10)

	b := doc.Find("#b")
	assert.Equal(t, []string{"hello", "world"}, b.Lines())
	assert.Equal(t, 2.0, b.Box().H)
	assert.Equal(t, 15.0, doc.ContentHeight())
}

func TestLayoutExplicitWidthAndPre(t *testing.T) {
	doc, err := ParseString(`<body><div id="w" style="width: 8; margin-left: 3">one two three</div><pre id="p">  a
  b</pre></body>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc.Resize(40, 10)

	w := doc.Find("#w")
	assert.Equal(t, 3.0, w.Box().X)
	assert.Equal(t, 8.0, w.Box().W)
	assert.Equal(t, []string{"one two", "three"}, w.Lines())

	p := doc.Find("#p")
	assert.Equal(t, []string{"  a", "  b"}, p.Lines())
	assert.Equal(t, 2.0, p.Box().Y)
}
