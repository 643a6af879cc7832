// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from embedded JSON files.
// The embedded JSON files in defaults/ are the single source of truth.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/texelscroll/defaults"
)

var (
	embeddedSystemOnce sync.Once
	embeddedSystem     Config
	embeddedSystemErr  error

	embeddedApps   = make(map[string]Config)
	embeddedAppsMu sync.Mutex
)

// embeddedSystemDefaults parses defaults/texelscroll.json once.
func embeddedSystemDefaults() (Config, error) {
	embeddedSystemOnce.Do(func() {
		embeddedSystem, embeddedSystemErr = parseEmbedded(defaults.SystemConfig())
	})
	return embeddedSystem, embeddedSystemErr
}

// embeddedAppDefaults parses defaults/apps/<app>/config.json. Apps without
// an embedded file yield nil.
func embeddedAppDefaults(app string) (Config, error) {
	embeddedAppsMu.Lock()
	defer embeddedAppsMu.Unlock()
	if cfg, ok := embeddedApps[app]; ok {
		return cfg, nil
	}
	data, err := defaults.AppConfig(app)
	if err != nil {
		return nil, nil
	}
	cfg, err := parseEmbedded(data, nil)
	if err != nil {
		return nil, err
	}
	embeddedApps[app] = cfg
	return cfg, nil
}

func parseEmbedded(data []byte, err error) (Config, error) {
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultSystemConfig returns a private copy of the embedded system defaults.
func defaultSystemConfig() Config {
	cfg, err := embeddedSystemDefaults()
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}

// defaultAppConfig returns a private copy of the embedded app defaults.
func defaultAppConfig(app string) Config {
	cfg, err := embeddedAppDefaults(app)
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}
