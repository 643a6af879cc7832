// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/parallax-demo/main.go
// Summary: Interactive terminal demo of the parallax engine.
// Usage: parallax-demo [-page file.html] [-open name] [-save name] [-list] [-find query]

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/texelscroll/apps/parallaxdemo"
	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/internal/devshell"
	"github.com/framegrace/texelscroll/internal/library"
	"github.com/framegrace/texelscroll/page"
	"github.com/framegrace/texelscroll/texel"
)

func main() {
	pagePath := flag.String("page", "", "HTML page to show (bundled demo page when empty)")
	openName := flag.String("open", "", "show a page saved in the library")
	saveName := flag.String("save", "", "save the page given with -page to the library under this name")
	deleteName := flag.String("delete", "", "remove a page from the library and exit")
	list := flag.Bool("list", false, "list saved pages and exit")
	find := flag.String("find", "", "search saved pages and exit")
	libPath := flag.String("library", "", "library database path (defaults to the config directory)")
	fps := flag.Int("fps", 0, "frame rate override")
	logPath := flag.String("log", "", "log file (defaults to parallax-demo.log in the config directory)")
	flag.Parse()

	logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	} else {
		defer logFile.Close()
	}
	if err := config.Err(); err != nil {
		log.Printf("Config: %v", err)
	}

	appCfg := config.App(parallaxdemo.AppName)
	opts := parallaxdemo.OptionsFromConfig(config.System(), appCfg)
	if *fps > 0 {
		opts.FPS = *fps
	}

	needLibrary := *openName != "" || *saveName != "" || *deleteName != "" || *list || *find != ""
	var lib *library.Library
	if needLibrary {
		path := *libPath
		if path == "" {
			path = appCfg.GetString("demo", "library_path", "")
		}
		lib, err = openLibrary(path)
		if err != nil {
			fail(err)
		}
		defer lib.Close()
	}

	switch {
	case *list:
		entries, err := lib.List()
		if err != nil {
			fail(err)
		}
		printEntries(entries)
		return
	case *find != "":
		entries, err := lib.Search(*find, 0)
		if err != nil {
			fail(err)
		}
		printEntries(entries)
		return
	case *deleteName != "":
		if err := lib.Delete(*deleteName); err != nil {
			fail(err)
		}
		return
	}

	switch {
	case *openName != "":
		p, err := lib.Load(*openName)
		if err != nil {
			fail(err)
		}
		opts.HTML = []byte(p.HTML)
		if opts.Title == "" {
			opts.Title = p.Title
		}
	case *pagePath != "":
		data, err := os.ReadFile(*pagePath)
		if err != nil {
			fail(err)
		}
		opts.HTML = data
		if *saveName != "" {
			if err := savePage(lib, *saveName, data); err != nil {
				fail(err)
			}
			log.Printf("Library: saved %s as %q", *pagePath, *saveName)
		}
	case *saveName != "":
		fail(errors.New("-save needs -page"))
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail(errors.New("stdout is not a terminal"))
	}

	err = devshell.Run(func([]string) (texel.App, error) {
		return parallaxdemo.New(opts)
	}, flag.Args())
	if err != nil {
		log.Printf("ParallaxDemo: run failed: %v", err)
		fail(err)
	}
}

func openLibrary(path string) (*library.Library, error) {
	if path == "" {
		var err error
		if path, err = library.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return library.Open(path)
}

// savePage stores data under name, taking the title from the page itself.
func savePage(lib *library.Library, name string, data []byte) error {
	doc, err := page.ParseString(string(data))
	if err != nil {
		return err
	}
	return lib.Save(library.Page{
		Name:    name,
		Title:   doc.Title(),
		HTML:    string(data),
		SavedAt: time.Now(),
	})
}

func printEntries(entries []library.Entry) {
	if len(entries) == 0 {
		fmt.Println("no pages")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tSIZE\tSAVED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.Name, e.Title, e.Size, e.SavedAt.Format(time.DateTime))
	}
	w.Flush()
}

func setupLogging(path string) (*os.File, error) {
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "logs", "parallax-demo.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "parallax-demo: %v\n", err)
	os.Exit(1)
}
