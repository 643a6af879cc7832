// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load and seeding logic for config files.

package config

import (
	"errors"
	"log"
)

// source describes how one config file is loaded.
type source struct {
	label   string
	path    string
	seed    func() Config
	migrate func(Config) (bool, error)
	apply   func(Config)
}

func (s *Store) loadSystemLocked() error {
	path, err := s.systemPath()
	cfg, err := load(source{
		label:   "system",
		path:    path,
		seed:    defaultSystemConfig,
		migrate: s.migrateLegacy,
		apply:   applySystemDefaults,
	}, err)
	s.system = cfg
	return err
}

func (s *Store) loadAppLocked(name string) (Config, error) {
	path, err := s.appPath(name)
	return load(source{
		label: "app " + name,
		path:  path,
		seed:  func() Config { return defaultAppConfig(name) },
		apply: func(cfg Config) { applyAppDefaults(name, cfg) },
	}, err)
}

// load reads src.path and fills in defaults. A missing or empty file is
// seeded (from a legacy migration first, then the embedded defaults) and
// written back. An unreadable file is left alone and the defaults are used
// in memory. The result is never nil.
func load(src source, pathErr error) (Config, error) {
	if pathErr != nil {
		cfg := seedOrEmpty(src.seed)
		src.apply(cfg)
		if errors.Is(pathErr, errNoRoot) {
			return cfg, nil
		}
		log.Printf("Config: Failed to resolve %s config path: %v", src.label, pathErr)
		return cfg, pathErr
	}

	cfg, exists, readErr := readConfig(src.path)
	if readErr != nil {
		log.Printf("Config: Failed to read %s config %s: %v", src.label, src.path, readErr)
		cfg = seedOrEmpty(src.seed)
		src.apply(cfg)
		return cfg, readErr
	}

	write := false
	if !exists || len(cfg) == 0 {
		cfg = make(Config)
		if !exists && src.migrate != nil {
			migrated, err := src.migrate(cfg)
			if err != nil {
				log.Printf("Config: Legacy %s migration error: %v", src.label, err)
				readErr = err
			}
			write = migrated
		}
		if !write {
			if def := src.seed(); def != nil {
				cfg = def
				write = true
			}
		}
	}
	src.apply(cfg)

	if write {
		if err := writeConfig(src.path, cfg); err != nil {
			log.Printf("Config: Failed to write %s config: %v", src.label, err)
			if readErr == nil {
				readErr = err
			}
		}
	} else if readErr == nil {
		log.Printf("Config: Loaded %s config from %s", src.label, src.path)
	}
	return cfg, readErr
}

func seedOrEmpty(seed func() Config) Config {
	if def := seed(); def != nil {
		return def
	}
	return make(Config)
}
