// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/frameclock.go
// Summary: Fixed-interval ClockPort flushed by the host loop.
// Usage: The host selects on a ticker of Interval() and calls Flush.

package parallax

import "time"

// FrameClock queues frame callbacks until the host flushes them. Callbacks
// requested during a flush run on the next flush.
type FrameClock struct {
	interval time.Duration
	next     FrameHandle
	pending  map[FrameHandle]func(time.Time)
	order    []FrameHandle
	flushing map[FrameHandle]func(time.Time)
}

// NewFrameClock returns a clock for the given frame rate; fps <= 0 uses DefaultFPS.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameClock{
		interval: time.Second / time.Duration(fps),
		pending:  make(map[FrameHandle]func(time.Time)),
	}
}

// Interval is the time between frames.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// RequestFrame queues fn for the next flush.
func (c *FrameClock) RequestFrame(fn func(now time.Time)) FrameHandle {
	c.next++
	h := c.next
	c.pending[h] = fn
	c.order = append(c.order, h)
	return h
}

// CancelFrame drops a queued callback. Unknown handles are ignored.
func (c *FrameClock) CancelFrame(h FrameHandle) {
	delete(c.pending, h)
	if c.flushing != nil {
		delete(c.flushing, h)
	}
}

// Pending returns the number of queued callbacks.
func (c *FrameClock) Pending() int {
	return len(c.pending)
}

// Flush runs every callback queued before the call, in request order, and
// returns how many ran.
func (c *FrameClock) Flush(now time.Time) int {
	batch, order := c.pending, c.order
	c.pending = make(map[FrameHandle]func(time.Time))
	c.order = nil
	c.flushing = batch
	defer func() { c.flushing = nil }()

	ran := 0
	for _, h := range order {
		fn, ok := batch[h]
		if !ok {
			continue
		}
		delete(batch, h)
		fn(now)
		ran++
	}
	return ran
}
