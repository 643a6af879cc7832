// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/app-runner/main.go
// Summary: Runs a registered app by name with its stored configuration.
// Usage: app-runner -app parallaxdemo [page.html]
// Notes: parallaxdemo (the scroll-linked parallax page viewer) is the only
// registered app; -list prints the registry.

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/framegrace/texelscroll/internal/devshell"
)

func main() {
	appName := flag.String("app", "parallaxdemo", "name of the app to run")
	list := flag.Bool("list", false, "print the registered apps and exit")
	flag.Parse()
	if *list {
		for _, name := range devshell.AppNames() {
			fmt.Println(name)
		}
		return
	}
	if *appName == "" {
		log.Fatal("please specify -app")
	}
	if err := devshell.RunApp(*appName, flag.Args()); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
