// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Contract between hosted apps and the terminal runner.
// Usage: Apps implement App; optional capabilities are discovered with type
// assertions by the host.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of a rendered frame.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is a full-screen program hosted by a runner.
//
// Run blocks until Stop is called. Resize, HandleKey and Render are called
// from the host goroutine while Run is active, so implementations guard
// their state.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	HandleKey(ev *tcell.EventKey)
	GetTitle() string
	// SetRefreshNotifier gives the app a channel to request a redraw. Sends
	// should not block.
	SetRefreshNotifier(refreshChan chan<- bool)
}

// MouseWheelHandler receives wheel motion; deltaY is negative for "up".
type MouseWheelHandler interface {
	HandleMouseWheel(x, y, deltaX, deltaY int, modifiers tcell.ModMask)
}

// CloseRequester is implemented by apps that can ask the host to exit.
type CloseRequester interface {
	SetCloseRequester(fn func())
}

// NewBuffer allocates a rows x cols frame filled with blank cells.
func NewBuffer(cols, rows int, style tcell.Style) [][]Cell {
	if cols <= 0 || rows <= 0 {
		return [][]Cell{}
	}
	buf := make([][]Cell, rows)
	for y := range buf {
		buf[y] = make([]Cell, cols)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}
