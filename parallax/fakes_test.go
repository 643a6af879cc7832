// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package parallax

import (
	"strings"
	"time"
)

// fakeNode is positioned in document coordinates; BoundingRect applies the
// document scroll and the node's own translate3d like a browser would.
type fakeNode struct {
	doc          *fakeDoc
	top, height  float64
	marginTop    float64
	marginBottom float64
	attrs        map[string]string
	style        map[string]string
	writes       int
}

func (n *fakeNode) BoundingRect() Rect {
	return Rect{Y: n.top - n.doc.scrollY + TranslateY(n.style["transform"]), H: n.height, W: 10}
}

func (n *fakeNode) Margins() (float64, float64) { return n.marginTop, n.marginBottom }
func (n *fakeNode) Transform() string           { return n.style["transform"] }
func (n *fakeNode) Attr(name string) string     { return n.attrs[name] }

func (n *fakeNode) SetStyle(property, value string) {
	n.style[property] = value
	n.writes++
}

type fakeSub struct {
	doc *fakeDoc
	id  int
}

func (s *fakeSub) Unsubscribe() { delete(s.doc.subs, s.id) }

type fakeDoc struct {
	width, height float64
	scrollY       float64
	nodes         map[string][]*fakeNode
	custom        map[string]Node
	subs          map[int]func()
	nextID        int
}

func newFakeDoc(width, height float64) *fakeDoc {
	return &fakeDoc{
		width:  width,
		height: height,
		nodes:  make(map[string][]*fakeNode),
		custom: make(map[string]Node),
		subs:   make(map[int]func()),
	}
}

func (d *fakeDoc) add(selector string, top, height float64) *fakeNode {
	n := &fakeNode{
		doc:    d,
		top:    top,
		height: height,
		attrs:  make(map[string]string),
		style:  make(map[string]string),
	}
	d.nodes[selector] = append(d.nodes[selector], n)
	return n
}

func (d *fakeDoc) Size() (float64, float64) { return d.width, d.height }
func (d *fakeDoc) ScrollY() float64         { return d.scrollY }

func (d *fakeDoc) SubscribeResize(fn func()) Subscription {
	d.nextID++
	d.subs[d.nextID] = fn
	return &fakeSub{doc: d, id: d.nextID}
}

func (d *fakeDoc) fireResize() {
	for _, fn := range d.subs {
		fn()
	}
}

func (d *fakeDoc) Query(selector string) Node {
	if n, ok := d.custom[selector]; ok {
		return n
	}
	if ns := d.nodes[selector]; len(ns) > 0 {
		return ns[0]
	}
	return nil
}

func (d *fakeDoc) QueryAll(selector string) []Node {
	var out []Node
	for _, sel := range strings.Split(selector, ", ") {
		for _, n := range d.nodes[sel] {
			out = append(out, n)
		}
	}
	return out
}

type staticRender string

func (r staticRender) TransformProperty() string { return string(r) }

// leakyClock never forgets a callback, so stale frames can be fired by hand.
type leakyClock struct {
	next      FrameHandle
	callbacks map[FrameHandle]func(time.Time)
	cancelled int
}

func newLeakyClock() *leakyClock {
	return &leakyClock{callbacks: make(map[FrameHandle]func(time.Time))}
}

func (c *leakyClock) RequestFrame(fn func(time.Time)) FrameHandle {
	c.next++
	c.callbacks[c.next] = fn
	return c.next
}

func (c *leakyClock) CancelFrame(FrameHandle) { c.cancelled++ }

func (c *leakyClock) fireAll() {
	batch := c.callbacks
	c.callbacks = make(map[FrameHandle]func(time.Time))
	for _, fn := range batch {
		fn(time.Now())
	}
}

// scrollingNode is a wrapper with its own scroll position.
type scrollingNode struct {
	*fakeNode
	y float64
}

func (n *scrollingNode) ScrollY() float64 { return n.y }
