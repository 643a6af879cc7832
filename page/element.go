// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/element.go
// Summary: Laid-out block element implementing parallax.Node.

package page

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/framegrace/texelscroll/parallax"
)

// Element is a block-level element of a Document.
type Element struct {
	doc      *Document
	node     *html.Node
	parent   *Element
	children []*Element

	style   Style
	box     parallax.Rect
	margin  Edges
	padding Edges
	lines   []string
	hidden  bool
}

// Tag returns the lower-case element name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// Attr returns an attribute value or "".
func (e *Element) Attr(name string) string {
	return attr(e.node, name)
}

// SetAttr sets an attribute; an empty value removes it. Layout is not
// affected until the next Resize.
func (e *Element) SetAttr(name, value string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace != "" || a.Key != name {
			attrs = append(attrs, a)
		}
	}
	if value != "" {
		attrs = append(attrs, html.Attribute{Key: name, Val: value})
	}
	e.node.Attr = attrs
}

// HasClass reports whether the class attribute lists name.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// Parent returns the enclosing block element, nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the block children in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Hidden reports whether the element is excluded from layout.
func (e *Element) Hidden() bool {
	return e.hidden
}

// Box returns the untranslated layout box in document coordinates.
func (e *Element) Box() parallax.Rect {
	return e.box
}

// Padding returns the resolved padding.
func (e *Element) Padding() Edges {
	return e.padding
}

// Lines returns the element's own text, wrapped to its content width.
func (e *Element) Lines() []string {
	return e.lines
}

// Style returns the value of an inline style property.
func (e *Element) Style(name string) string {
	return e.style.Get(name)
}

// Translation returns the vertical translation currently applied.
func (e *Element) Translation() float64 {
	return parallax.TranslateY(e.Transform())
}

// BoundingRect returns the rendered box relative to the viewport, including
// the applied translation.
func (e *Element) BoundingRect() parallax.Rect {
	r := e.box
	r.Y = r.Y - e.doc.scrollY + e.Translation()
	return r
}

// Margins returns the top and bottom margins.
func (e *Element) Margins() (top, bottom float64) {
	return e.margin.Top, e.margin.Bottom
}

// Transform returns the inline transform under the document's transform property.
func (e *Element) Transform() string {
	return e.style.Get(e.doc.TransformProperty())
}

// SetStyle writes an inline style property.
func (e *Element) SetStyle(property, value string) {
	e.style.Set(property, value)
}
