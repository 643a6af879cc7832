// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelscroll configuration.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the texelscroll configuration directory. Other on-disk state
// such as the page library lives next to the config files.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelscroll"), nil
}

func (s *Store) file(parts ...string) (string, error) {
	if s.root == "" {
		return "", errNoRoot
	}
	return filepath.Join(append([]string{s.root}, parts...)...), nil
}

func (s *Store) systemPath() (string, error) { return s.file(systemConfigName) }

func (s *Store) legacyPath() (string, error) { return s.file(legacyConfigName) }

func (s *Store) appPath(app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("app name is required")
	}
	return s.file("apps", app, "config.json")
}
