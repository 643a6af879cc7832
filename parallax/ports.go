// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/ports.go
// Summary: Environment and platform interfaces the engine runs against.
// Usage: Implemented by page.Document for terminals and by fakes in tests.

package parallax

import "time"

// Rect is a box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Node is a tracked element as seen by the engine.
type Node interface {
	// BoundingRect returns the rendered box relative to the viewport top,
	// including any transform currently applied to the node.
	BoundingRect() Rect
	// Margins returns the computed top and bottom margins.
	Margins() (top, bottom float64)
	// Transform returns the inline transform string.
	Transform() string
	// SetStyle writes an inline style property.
	SetStyle(property, value string)
	// Attr returns the attribute value or "" when absent.
	Attr(name string) string
}

// Scroller reports a vertical scroll offset.
type Scroller interface {
	ScrollY() float64
}

// Subscription is returned by SubscribeResize.
type Subscription interface {
	Unsubscribe()
}

// ViewportPort exposes the viewport the document scrolls in.
type ViewportPort interface {
	Scroller
	Size() (width, height float64)
	SubscribeResize(fn func()) Subscription
}

// ElementPort resolves selectors to nodes. Query returns nil when nothing
// matches or the selector is invalid.
type ElementPort interface {
	Query(selector string) Node
	QueryAll(selector string) []Node
}

// Document is everything an Engine needs from its environment.
type Document interface {
	ViewportPort
	ElementPort
}

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// ClockPort schedules one-shot per-frame callbacks.
type ClockPort interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
}

// RenderPort reports platform rendering capabilities.
type RenderPort interface {
	// TransformProperty names the style property transforms are written to.
	TransformProperty() string
}
