// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("engine", Section{
		"wrapper":   "",
		"vertical":  true,
		"speed":     0.6,
		"distance":  1000,
		"selectors": []interface{}{".scrollar"},
	})
	cfg.RegisterDefaults("scheduler", Section{
		"fps": 60,
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "parallaxdemo":
		cfg.RegisterDefaults("demo", Section{
			"scroll_step":     1,
			"page_step":       0,
			"show_status":     true,
			"highlight_style": "catppuccin-mocha",
			"library_path":    "",
		})
	}
}
