// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/scheduler.go
// Summary: Render-loop lifecycle: frame requests and the resize subscription.
// Notes: At most one frame request and one resize subscription exist at a time.

package parallax

import (
	"log"
	"time"
)

// SchedulerState is the lifecycle state of a FrameScheduler.
type SchedulerState int

const (
	Stopped SchedulerState = iota
	Running
)

func (s SchedulerState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	}
	return "unknown"
}

// FrameScheduler drives a recompute step and a per-frame tick.
type FrameScheduler struct {
	clock    ClockPort
	viewport ViewportPort

	// recompute re-measures and forces one animation pass.
	recompute func() error
	// tick runs once per frame while Running.
	tick func(now time.Time)

	state   SchedulerState
	frame   FrameHandle
	pending bool
	seq     uint64
	resize  Subscription
	// err is the outcome of the last Refresh.
	err error
}

// NewFrameScheduler returns a stopped scheduler.
func NewFrameScheduler(clock ClockPort, viewport ViewportPort, recompute func() error, tick func(now time.Time)) *FrameScheduler {
	return &FrameScheduler{
		clock:     clock,
		viewport:  viewport,
		recompute: recompute,
		tick:      tick,
	}
}

// State returns the current lifecycle state.
func (s *FrameScheduler) State() SchedulerState {
	return s.state
}

// Running reports whether the loop is active.
func (s *FrameScheduler) Running() bool {
	return s.state == Running
}

// Start begins the loop. It is a no-op while Running.
func (s *FrameScheduler) Start() error {
	if s.state == Running {
		return nil
	}
	return s.Refresh()
}

// Refresh recomputes, replaces the pending frame request and, when stopped,
// subscribes to resize and starts running. It also serves as the resize
// handler. A failed recompute leaves the scheduler untouched.
func (s *FrameScheduler) Refresh() error {
	if err := s.recompute(); err != nil {
		s.err = err
		return err
	}
	s.err = nil
	s.requestFrame()
	if s.state == Stopped {
		s.resize = s.viewport.SubscribeResize(s.onResize)
		s.state = Running
	}
	return nil
}

// Err returns the error of the last Refresh, including refreshes triggered
// by resize, or nil when it succeeded.
func (s *FrameScheduler) Err() error {
	return s.err
}

// Stop cancels the pending frame and drops the resize subscription.
// Calling it again does nothing.
func (s *FrameScheduler) Stop() {
	if s.state == Running {
		if s.resize != nil {
			s.resize.Unsubscribe()
			s.resize = nil
		}
		s.state = Stopped
	}
	if s.pending {
		s.clock.CancelFrame(s.frame)
		s.pending = false
	}
}

func (s *FrameScheduler) onResize() {
	if err := s.Refresh(); err != nil {
		log.Printf("Parallax: refresh after resize failed: %v", err)
	}
}

func (s *FrameScheduler) requestFrame() {
	if s.pending {
		s.clock.CancelFrame(s.frame)
	}
	s.seq++
	seq := s.seq
	s.frame = s.clock.RequestFrame(func(now time.Time) {
		s.onFrame(seq, now)
	})
	s.pending = true
}

func (s *FrameScheduler) onFrame(seq uint64, now time.Time) {
	if seq != s.seq || !s.pending {
		return
	}
	s.pending = false
	if s.state != Running {
		return
	}
	s.tick(now)
	// tick may have stopped or refreshed the scheduler
	if s.state == Running && !s.pending {
		s.requestFrame()
	}
}
