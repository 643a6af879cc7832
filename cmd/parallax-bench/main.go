// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/parallax-bench/main.go
// Summary: Headless run of the parallax engine over a synthetic scroll.
// Usage: parallax-bench [-page file.html] [-frames 600] [-step 1]

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/defaults"
	"github.com/framegrace/texelscroll/page"
	"github.com/framegrace/texelscroll/parallax"
)

func main() {
	pagePath := flag.String("page", "", "HTML page to animate (bundled demo page when empty)")
	frames := flag.Int("frames", 600, "number of frames to run")
	step := flag.Float64("step", 1, "rows scrolled per frame; direction flips at either end")
	flag.Parse()

	html := defaults.DemoPage()
	if *pagePath != "" {
		data, err := os.ReadFile(*pagePath)
		if err != nil {
			log.Fatalf("ParallaxBench: %v", err)
		}
		html = data
	}

	width, height := 80, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
	}

	doc, err := page.ParseString(string(html))
	if err != nil {
		log.Fatalf("ParallaxBench: parse page: %v", err)
	}
	doc.Resize(float64(width), float64(height))

	cfg, selectors, fps := parallax.ConfigFromStore(config.System())
	clock := parallax.NewFrameClock(fps)
	engine, err := parallax.New(doc, clock, doc, cfg, selectors...)
	if err != nil {
		log.Fatalf("ParallaxBench: %v", err)
	}
	defer engine.Destroy()

	dir := *step
	start := time.Now()
	now := start
	for i := 0; i < *frames; i++ {
		if !doc.ScrollBy(dir) {
			dir = -dir
			doc.ScrollBy(dir)
		}
		now = now.Add(clock.Interval())
		clock.Flush(now)
	}
	elapsed := time.Since(start)

	animated, writes := engine.Stats()
	fmt.Printf("viewport     %dx%d, content %.0f rows\n", width, height, doc.ContentHeight())
	fmt.Printf("blocks       %d\n", len(engine.Blocks()))
	fmt.Printf("frames       %d requested, %d animated\n", *frames, animated)
	fmt.Printf("writes       %d", writes)
	if animated > 0 {
		fmt.Printf(" (%.2f per animated frame)", float64(writes)/float64(animated))
	}
	fmt.Println()
	fmt.Printf("elapsed      %v (%.1f µs/frame)\n", elapsed, float64(elapsed.Microseconds())/float64(max(*frames, 1)))
}
