// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration files and the bundled demo page.

package defaults

import (
	"embed"
	"fmt"
)

//go:embed texelscroll.json apps/*/config.json pages/*.html
var fs embed.FS

// SystemConfig returns the embedded system config JSON.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelscroll.json")
}

// AppConfig returns the embedded config JSON for the named app.
func AppConfig(app string) ([]byte, error) {
	if app == "" {
		return nil, fmt.Errorf("app name is required")
	}
	return fs.ReadFile(fmt.Sprintf("apps/%s/config.json", app))
}

// DemoPage returns the bundled demo page HTML.
func DemoPage() []byte {
	data, err := fs.ReadFile("pages/demo.html")
	if err != nil {
		// the file is embedded at build time
		panic(err)
	}
	return data
}
