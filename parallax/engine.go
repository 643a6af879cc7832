// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/engine.go
// Summary: Scroll-linked parallax engine tying the block cache, scroll
// tracker, animator and frame scheduler together.
// Usage: Construct with New, call Refresh after layout changes, Destroy to stop.
// Notes: Not safe for concurrent use; drive it from the goroutine that
// flushes the ClockPort and dispatches resize notifications.

package parallax

import (
	"log"
	"strings"
	"time"
)

// Engine displaces tracked elements by a fraction of the scroll position.
type Engine struct {
	doc       Document
	render    RenderPort
	config    Config
	selectors []string

	nodes   []Node
	wrapper Node

	viewport  ViewportMetrics
	blocks    []Block
	scroll    *ScrollTracker
	scheduler *FrameScheduler

	frames uint64
	writes uint64
}

// New validates the selectors and the configured wrapper, then starts the
// engine: the first animation pass runs before New returns. With no
// selectors the default ".scrollar" is used.
func New(doc Document, clock ClockPort, render RenderPort, cfg Config, selectors ...string) (*Engine, error) {
	if len(selectors) == 0 {
		selectors = []string{DefaultSelector}
	}
	for _, sel := range selectors {
		if doc.Query(sel) == nil {
			return nil, selectorError(ErrSelectorNotFound, sel)
		}
	}

	cfg = cfg.withDefaults()
	var wrapper Node
	if cfg.Wrapper != "" {
		wrapper = doc.Query(cfg.Wrapper)
		if wrapper == nil {
			return nil, selectorError(ErrWrapperNotFound, cfg.Wrapper)
		}
	}
	if !cfg.Vertical {
		log.Printf("Parallax: only vertical scrolling is supported, scroll changes will be ignored")
	}

	e := &Engine{
		doc:       doc,
		render:    render,
		config:    cfg,
		selectors: append([]string(nil), selectors...),
		nodes:     doc.QueryAll(strings.Join(selectors, ", ")),
		wrapper:   wrapper,
	}

	// offsets are measured in document space, so the document scroll is
	// sampled even when the wrapper scrolls on its own
	e.scroll = NewScrollTracker(doc, cfg.Vertical)
	e.scheduler = NewFrameScheduler(clock, doc, e.recompute, e.tick)

	if err := e.scheduler.Start(); err != nil {
		return nil, err
	}
	return e, nil
}

// Refresh re-measures the viewport, rebuilds the block cache and forces one
// animation pass. A destroyed engine starts running again.
func (e *Engine) Refresh() error {
	return e.scheduler.Refresh()
}

// Err returns the failure of the last refresh, nil when it succeeded. A
// failed refresh keeps the previous block cache.
func (e *Engine) Err() error {
	return e.scheduler.Err()
}

// Destroy stops the frame loop and drops the resize subscription.
func (e *Engine) Destroy() {
	e.scheduler.Stop()
}

// Running reports whether the frame loop is active.
func (e *Engine) Running() bool {
	return e.scheduler.Running()
}

// Blocks returns a copy of the current block cache.
func (e *Engine) Blocks() []Block {
	return append([]Block(nil), e.blocks...)
}

// Viewport returns the last measured viewport.
func (e *Engine) Viewport() ViewportMetrics {
	return e.viewport
}

// Scroll returns the last sampled scroll state.
func (e *Engine) Scroll() ScrollState {
	return e.scroll.State()
}

// Selectors returns the element selectors the engine tracks.
func (e *Engine) Selectors() []string {
	return append([]string(nil), e.selectors...)
}

// Stats returns the number of animated frames and transform writes so far.
func (e *Engine) Stats() (frames, writes uint64) {
	return e.frames, e.writes
}

func (e *Engine) recompute() error {
	viewport := MeasureViewport(e.doc)
	blocks, err := BuildBlocks(e.doc, e.nodes, e.wrapper, e.config.Speed)
	if err != nil {
		return err
	}
	e.viewport = viewport
	e.blocks = blocks
	e.scroll.Sample()
	e.animate()
	return nil
}

func (e *Engine) tick(time.Time) {
	if _, changed := e.scroll.Sample(); changed && e.scheduler.Running() {
		e.animate()
	}
}

func (e *Engine) animate() {
	n := AnimateFrame(e.blocks, e.scroll.State(), e.viewport, e.config, e.render.TransformProperty())
	e.frames++
	e.writes += uint64(n)
}
