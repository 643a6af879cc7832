// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Hosts a single texel.App full screen on a local tcell screen.
// Usage: cmd/parallax-demo builds the app and hands it to Run.

package devshell

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/apps/parallaxdemo"
	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var registry = map[string]Builder{
	parallaxdemo.AppName: func(args []string) (texel.App, error) {
		opts := parallaxdemo.OptionsFromConfig(config.System(), config.App(parallaxdemo.AppName))
		if len(args) > 0 {
			html, err := os.ReadFile(args[0])
			if err != nil {
				return nil, err
			}
			opts.HTML = html
		}
		return parallaxdemo.New(opts)
	},
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// closeRequest is posted as interrupt data when the app asks to exit.
type closeRequest struct{}

// Run executes the provided builder inside a local tcell screen. It returns
// on Ctrl-C, when the app requests to close, or when the app's Run fails.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)
	if cr, ok := app.(texel.CloseRequester); ok {
		cr.SetCloseRequester(func() {
			screen.PostEvent(tcell.NewEventInterrupt(closeRequest{}))
		})
	}

	draw := func() {
		screen.Clear()
		buffer := app.Render()
		for y := 0; y < len(buffer); y++ {
			row := buffer[y]
			for x := 0; x < len(row); x++ {
				cell := row[x]
				if cell.Ch == 0 {
					// second half of a wide rune
					continue
				}
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	draw()

	runErr := make(chan error, 1)
	go func() {
		err := app.Run()
		runErr <- err
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	defer app.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if _, ok := tev.Data().(closeRequest); ok {
				return nil
			}
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			if dy := wheelDelta(tev.Buttons()); dy != 0 {
				if wh, ok := app.(texel.MouseWheelHandler); ok {
					x, y := tev.Position()
					wh.HandleMouseWheel(x, y, 0, dy, tev.Modifiers())
					draw()
				}
			}
		}
	}
}

// wheelDelta maps wheel buttons to rows: negative scrolls up.
func wheelDelta(b tcell.ButtonMask) int {
	switch {
	case b&tcell.WheelUp != 0:
		return -1
	case b&tcell.WheelDown != 0:
		return 1
	}
	return 0
}

// ErrUnknownApp is returned by RunApp for a name with no registered builder.
var ErrUnknownApp = errors.New("devshell: unknown app")

// AppNames lists the registered app names in sorted order.
func AppNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w %q (have %s)", ErrUnknownApp, name, strings.Join(AppNames(), ", "))
	}
	return Run(buildApp, args)
}
