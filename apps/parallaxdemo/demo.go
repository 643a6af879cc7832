// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/parallaxdemo/demo.go
// Summary: Terminal app that scrolls an HTML page under the parallax engine.
// Usage: Build with New, host with devshell.Run or any texel.App runner.
// Notes: The engine, the document and the frame clock are only touched with
// mu held. Run flushes the clock on its own ticker; host callbacks (keys,
// resize, render) take the same lock.

package parallaxdemo

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/defaults"
	"github.com/framegrace/texelscroll/page"
	"github.com/framegrace/texelscroll/parallax"
	"github.com/framegrace/texelscroll/texel"
)

// AppName is the config store name of the demo.
const AppName = "parallaxdemo"

// Options configure a demo instance.
type Options struct {
	// HTML is the page to show; the bundled demo page when empty.
	HTML []byte
	// Title overrides the page <title>.
	Title string

	Engine    parallax.Config
	Selectors []string
	FPS       int

	// ScrollStep is the rows moved per arrow key or wheel notch.
	ScrollStep int
	// PageStep is the rows moved per PgUp/PgDn; 0 means one viewport.
	PageStep       int
	ShowStatus     bool
	HighlightStyle string
}

// DefaultOptions returns options equal to the embedded config defaults.
func DefaultOptions() Options {
	return Options{
		Engine:         parallax.DefaultConfig(),
		Selectors:      []string{parallax.DefaultSelector},
		FPS:            parallax.DefaultFPS,
		ScrollStep:     1,
		ShowStatus:     true,
		HighlightStyle: defaultStyleName,
	}
}

// OptionsFromConfig reads the engine and scheduler sections of the system
// config and the demo section of the app config.
func OptionsFromConfig(system, app config.Config) Options {
	opts := DefaultOptions()
	opts.Engine, opts.Selectors, opts.FPS = parallax.ConfigFromStore(system)
	opts.ScrollStep = app.GetInt("demo", "scroll_step", opts.ScrollStep)
	opts.PageStep = app.GetInt("demo", "page_step", opts.PageStep)
	opts.ShowStatus = app.GetBool("demo", "show_status", opts.ShowStatus)
	opts.HighlightStyle = app.GetString("demo", "highlight_style", opts.HighlightStyle)
	return opts
}

// App hosts a page and its parallax engine.
type App struct {
	mu   sync.Mutex
	opts Options

	doc    *page.Document
	clock  *parallax.FrameClock
	engine *parallax.Engine
	// engineErr is the last construction or refresh failure.
	engineErr error

	hl       *Highlighter
	spans    map[*page.Element][][]Span
	width    int
	height   int
	viewRows int

	refresh  chan<- bool
	closeFn  func()
	stop     chan struct{}
	stopOnce sync.Once
}

// New parses the page and prepares the app. The engine starts in Run.
func New(opts Options) (*App, error) {
	html := opts.HTML
	if len(html) == 0 {
		html = defaults.DemoPage()
	}
	doc, err := page.ParseString(string(html))
	if err != nil {
		return nil, err
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = parallax.DefaultFPS
	}
	return &App{
		opts:  opts,
		doc:   doc,
		clock: parallax.NewFrameClock(opts.FPS),
		hl:    NewHighlighter(opts.HighlightStyle),
		spans: make(map[*page.Element][][]Span),
		stop:  make(chan struct{}),
	}, nil
}

// SetRefreshNotifier implements texel.App.
func (a *App) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refresh = refreshChan
}

// SetCloseRequester implements texel.CloseRequester.
func (a *App) SetCloseRequester(fn func()) {
	a.closeFn = fn
}

// Run starts the engine and flushes its frame clock until Stop.
func (a *App) Run() error {
	a.mu.Lock()
	a.startEngineLocked()
	a.mu.Unlock()
	a.notify()

	ticker := time.NewTicker(a.clock.Interval())
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if a.flush(now) {
				a.notify()
			}
		case <-a.stop:
			a.mu.Lock()
			if a.engine != nil {
				a.engine.Destroy()
			}
			a.mu.Unlock()
			return nil
		}
	}
}

// flush runs due frame callbacks and reports whether anything was animated.
func (a *App) flush(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		return false
	}
	before, _ := a.engine.Stats()
	a.clock.Flush(now)
	after, _ := a.engine.Stats()
	return after != before
}

// Stop ends Run. It is safe to call more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// Resize lays the page out for the new terminal size. One row is kept for
// the status line when enabled.
func (a *App) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
	a.viewRows = rows
	if a.opts.ShowStatus && rows > 1 {
		a.viewRows = rows - 1
	}
	// resize subscribers (the engine) refresh synchronously here
	a.doc.Resize(float64(cols), float64(a.viewRows))
	a.syncRefreshErrLocked()
}

// HandleKey scrolls the page. r re-measures the engine, q asks to quit.
func (a *App) HandleKey(ev *tcell.EventKey) {
	a.mu.Lock()
	moved := false
	switch ev.Key() {
	case tcell.KeyUp:
		moved = a.doc.ScrollBy(-float64(a.opts.ScrollStep))
	case tcell.KeyDown:
		moved = a.doc.ScrollBy(float64(a.opts.ScrollStep))
	case tcell.KeyPgUp:
		moved = a.doc.ScrollBy(-a.pageStepLocked())
	case tcell.KeyPgDn:
		moved = a.doc.ScrollBy(a.pageStepLocked())
	case tcell.KeyHome:
		moved = a.doc.ScrollTo(0)
	case tcell.KeyEnd:
		moved = a.doc.ScrollTo(a.doc.MaxScroll())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			moved = a.doc.ScrollBy(-float64(a.opts.ScrollStep))
		case 'j':
			moved = a.doc.ScrollBy(float64(a.opts.ScrollStep))
		case ' ':
			moved = a.doc.ScrollBy(a.pageStepLocked())
		case 'r':
			a.refreshEngineLocked()
			moved = true
		case 'q':
			a.mu.Unlock()
			if a.closeFn != nil {
				a.closeFn()
			}
			return
		}
	}
	a.mu.Unlock()
	if moved {
		a.notify()
	}
}

// HandleMouseWheel implements texel.MouseWheelHandler.
func (a *App) HandleMouseWheel(x, y, deltaX, deltaY int, modifiers tcell.ModMask) {
	if deltaY == 0 {
		return
	}
	a.mu.Lock()
	moved := a.doc.ScrollBy(float64(deltaY * a.opts.ScrollStep))
	a.mu.Unlock()
	if moved {
		a.notify()
	}
}

// GetTitle returns the page title.
func (a *App) GetTitle() string {
	if a.opts.Title != "" {
		return a.opts.Title
	}
	if t := a.doc.Title(); t != "" {
		return t
	}
	return "Parallax"
}

// Stats returns the engine's animated frames and transform writes.
func (a *App) Stats() (frames, writes uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		return 0, 0
	}
	return a.engine.Stats()
}

// EngineErr returns the last engine failure, nil while healthy.
func (a *App) EngineErr() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engineErr
}

func (a *App) pageStepLocked() float64 {
	if a.opts.PageStep > 0 {
		return float64(a.opts.PageStep)
	}
	if a.viewRows > 1 {
		return float64(a.viewRows - 1)
	}
	return 1
}

func (a *App) startEngineLocked() {
	if a.engine != nil {
		return
	}
	e, err := parallax.New(a.doc, a.clock, a.doc, a.opts.Engine, a.opts.Selectors...)
	if err != nil {
		a.engineErr = err
		if errors.Is(err, parallax.ErrSelectorNotFound) {
			log.Printf("ParallaxDemo: page has nothing to animate: %v", err)
		} else {
			log.Printf("ParallaxDemo: failed to start engine: %v", err)
		}
		return
	}
	a.engine = e
	a.engineErr = nil
}

func (a *App) refreshEngineLocked() {
	if a.engine == nil {
		a.startEngineLocked()
		return
	}
	if err := a.engine.Refresh(); err != nil {
		log.Printf("ParallaxDemo: refresh: %v", err)
	}
	a.syncRefreshErrLocked()
}

// syncRefreshErrLocked mirrors the running engine's last refresh outcome
// into engineErr.
func (a *App) syncRefreshErrLocked() {
	if a.engine == nil {
		return
	}
	if err := a.engine.Err(); err != nil {
		a.engineErr = fmt.Errorf("refresh: %w", err)
		return
	}
	a.engineErr = nil
}

func (a *App) notify() {
	if a.refresh == nil {
		return
	}
	select {
	case a.refresh <- true:
	default:
	}
}

var (
	_ texel.App               = (*App)(nil)
	_ texel.MouseWheelHandler = (*App)(nil)
	_ texel.CloseRequester    = (*App)(nil)
)
