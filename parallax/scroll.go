// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/scroll.go
// Summary: Per-frame scroll sampling with one step of history.

package parallax

// ScrollState is the last two scroll samples.
type ScrollState struct {
	PreviousY float64
	CurrentY  float64
}

// ScrollTracker samples a scroll source once per frame.
type ScrollTracker struct {
	source   Scroller
	vertical bool
	state    ScrollState
}

// NewScrollTracker seeds CurrentY from the source so the first sample only
// reports movement that happened after construction.
func NewScrollTracker(source Scroller, vertical bool) *ScrollTracker {
	y := source.ScrollY()
	return &ScrollTracker{
		source:   source,
		vertical: vertical,
		state:    ScrollState{PreviousY: y, CurrentY: y},
	}
}

// Sample shifts CurrentY into PreviousY, reads the source and reports whether
// the position moved. A non-vertical tracker never reports movement.
func (t *ScrollTracker) Sample() (ScrollState, bool) {
	t.state.PreviousY = t.state.CurrentY
	t.state.CurrentY = t.source.ScrollY()
	return t.state, t.vertical && t.state.CurrentY != t.state.PreviousY
}

// State returns the last sampled state.
func (t *ScrollTracker) State() ScrollState {
	return t.state
}
