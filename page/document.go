// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/document.go
// Summary: In-memory HTML document with a scrollable viewport.
// Usage: Parse a page, Resize it to the terminal, hand it to parallax.New.
// Notes: Implements parallax.Document and parallax.RenderPort. Not safe for
// concurrent use; hosts guard it with their own lock.

package page

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/framegrace/texelscroll/parallax"
)

// transformCandidates are tried in order by TransformProperty.
var transformCandidates = []string{"transform", "WebkitTransform", "MozTransform", "msTransform"}

// Document is a parsed page laid out for a viewport.
type Document struct {
	root   *html.Node
	body   *Element
	byNode map[*html.Node]*Element
	elems  []*Element

	width, height float64
	scrollY       float64
	contentHeight float64

	selectors map[string]cascadia.Selector
	supported map[string]bool

	resize    map[int]func()
	nextSubID int
}

// Parse reads an HTML page. The document starts with a zero-size viewport;
// call Resize before use.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse: %w", err)
	}
	d := &Document{
		root:      root,
		byNode:    make(map[*html.Node]*Element),
		selectors: make(map[string]cascadia.Selector),
		supported: map[string]bool{"transform": true},
		resize:    make(map[int]func()),
	}
	body := findElement(root, "body")
	if body == nil {
		return nil, fmt.Errorf("page: document has no body")
	}
	d.body = d.newElement(body, nil)
	d.build(body, d.body)
	d.layout()
	return d, nil
}

// ParseString parses an HTML page held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) newElement(n *html.Node, parent *Element) *Element {
	el := &Element{
		doc:    d,
		node:   n,
		parent: parent,
		style:  ParseStyle(attr(n, "style")),
	}
	el.hidden = strings.TrimSpace(el.style.Get("display")) == "none"
	d.byNode[n] = el
	d.elems = append(d.elems, el)
	if parent != nil {
		parent.children = append(parent.children, el)
	}
	return el
}

func (d *Document) build(n *html.Node, parent *Element) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || hiddenTags[c.Data] {
			continue
		}
		if inlineTags[c.Data] {
			d.build(c, parent)
			continue
		}
		el := d.newElement(c, parent)
		d.build(c, el)
	}
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	t := findElement(d.root, "title")
	if t == nil {
		return ""
	}
	return strings.TrimSpace(textContent(t))
}

// Body returns the layout root.
func (d *Document) Body() *Element {
	return d.body
}

// Elements returns every block element in document order.
func (d *Document) Elements() []*Element {
	return d.elems
}

// Size returns the viewport size.
func (d *Document) Size() (width, height float64) {
	return d.width, d.height
}

// ScrollY returns the viewport scroll offset.
func (d *Document) ScrollY() float64 {
	return d.scrollY
}

// ContentHeight returns the laid-out height of the page.
func (d *Document) ContentHeight() float64 {
	return d.contentHeight
}

// MaxScroll is the largest valid scroll offset.
func (d *Document) MaxScroll() float64 {
	return math.Max(0, d.contentHeight-d.height)
}

// ScrollTo moves the viewport, clamped to the page, and reports whether it moved.
func (d *Document) ScrollTo(y float64) bool {
	y = math.Max(0, math.Min(y, d.MaxScroll()))
	if y == d.scrollY {
		return false
	}
	d.scrollY = y
	return true
}

// ScrollBy moves the viewport by dy rows.
func (d *Document) ScrollBy(dy float64) bool {
	return d.ScrollTo(d.scrollY + dy)
}

// Resize changes the viewport, relays out the page and notifies resize
// subscribers. Subscribers run synchronously on the caller's goroutine.
func (d *Document) Resize(width, height float64) {
	d.width, d.height = math.Max(0, width), math.Max(0, height)
	d.layout()
	d.ScrollTo(d.scrollY)

	ids := make([]int, 0, len(d.resize))
	for id := range d.resize {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := d.resize[id]; ok {
			fn()
		}
	}
}

type resizeSubscription struct {
	doc *Document
	id  int
}

func (s *resizeSubscription) Unsubscribe() {
	delete(s.doc.resize, s.id)
}

// SubscribeResize registers fn to run after every Resize.
func (d *Document) SubscribeResize(fn func()) parallax.Subscription {
	d.nextSubID++
	d.resize[d.nextSubID] = fn
	return &resizeSubscription{doc: d, id: d.nextSubID}
}

// ResizeSubscribers returns the number of active resize subscriptions.
func (d *Document) ResizeSubscribers() int {
	return len(d.resize)
}

// Support declares the style properties the host can render. The default is
// the unprefixed "transform".
func (d *Document) Support(properties ...string) {
	d.supported = make(map[string]bool, len(properties))
	for _, p := range properties {
		d.supported[p] = true
	}
}

// TransformProperty returns the first supported transform property name,
// falling back to "transform".
func (d *Document) TransformProperty() string {
	for _, p := range transformCandidates {
		if d.supported[p] {
			return p
		}
	}
	return "transform"
}

func (d *Document) compile(selector string) (cascadia.Selector, bool) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, sel != nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		d.selectors[selector] = nil
		return nil, false
	}
	d.selectors[selector] = sel
	return sel, true
}

// Find returns the first block element matching selector, or nil.
func (d *Document) Find(selector string) *Element {
	all := d.FindAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns the block elements matching selector in document order.
// An invalid selector matches nothing.
func (d *Document) FindAll(selector string) []*Element {
	sel, ok := d.compile(selector)
	if !ok {
		return nil
	}
	var out []*Element
	for _, n := range sel.MatchAll(d.root) {
		if el := d.byNode[n]; el != nil {
			out = append(out, el)
		}
	}
	return out
}

// Query implements parallax.ElementPort.
func (d *Document) Query(selector string) parallax.Node {
	el := d.Find(selector)
	if el == nil {
		return nil
	}
	return el
}

// QueryAll implements parallax.ElementPort.
func (d *Document) QueryAll(selector string) []parallax.Node {
	all := d.FindAll(selector)
	nodes := make([]parallax.Node, len(all))
	for i, el := range all {
		nodes[i] = el
	}
	return nodes
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
