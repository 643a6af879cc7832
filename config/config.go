// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: System + app configuration store for texelscroll.
// Usage: config.System() / config.App(name) read the default store rooted at
// Dir(); NewStore gives an isolated store for another directory.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	systemConfigName = "texelscroll.json"
	legacyConfigName = "scrollar.json"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Store holds the system config and lazily loaded app configs found under
// one root directory.
type Store struct {
	root string

	mu      sync.RWMutex
	system  Config
	apps    map[string]Config
	loadErr error
}

// NewStore loads the system config under root, seeding it from the embedded
// defaults (or a legacy scrollar.json) when absent. An empty root keeps
// everything in memory.
func NewStore(root string) *Store {
	s := &Store{root: root, apps: make(map[string]Config)}
	s.mu.Lock()
	s.loadErr = s.loadSystemLocked()
	s.mu.Unlock()
	return s
}

// Root returns the directory the store reads and writes.
func (s *Store) Root() string { return s.root }

// Err returns the most recent system config load error.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// System returns the system configuration (texelscroll.json).
func (s *Store) System() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.system
}

// App returns the config for a named app (apps/<app>/config.json).
func (s *Store) App(name string) Config {
	if name == "" {
		return nil
	}
	s.mu.RLock()
	cfg := s.apps[name]
	s.mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg, ok := s.apps[name]; ok {
		return cfg
	}
	loaded, err := s.loadAppLocked(name)
	if err != nil {
		log.Printf("Config: Failed to load app %q config: %v", name, err)
	}
	s.apps[name] = loaded
	return loaded
}

// Reload re-reads the system config and every app config loaded so far.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = s.loadSystemLocked()
	for name := range s.apps {
		loaded, err := s.loadAppLocked(name)
		if err != nil {
			log.Printf("Config: Failed to reload app %q config: %v", name, err)
		}
		s.apps[name] = loaded
	}
	return s.loadErr
}

// Set replaces the in-memory config of an app, or the system config when
// app is empty. The store keeps its own copy.
func (s *Store) Set(app string, cfg Config) {
	if cfg == nil {
		cfg = make(Config)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if app == "" {
		s.system = Clone(cfg)
		return
	}
	s.apps[app] = Clone(cfg)
}

// Save writes the in-memory config of an app, or the system config when app
// is empty.
func (s *Store) Save(app string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app == "" {
		path, err := s.systemPath()
		if err != nil {
			return err
		}
		return writeConfig(path, s.system)
	}
	cfg := s.apps[app]
	if cfg == nil {
		cfg = make(Config)
		applyAppDefaults(app, cfg)
		s.apps[app] = cfg
	}
	path, err := s.appPath(app)
	if err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store rooted at Dir().
func Default() *Store {
	defaultOnce.Do(func() {
		root, err := Dir()
		defaultStore = NewStore(root)
		if err != nil {
			defaultStore.mu.Lock()
			defaultStore.loadErr = err
			defaultStore.mu.Unlock()
		}
	})
	return defaultStore
}

// Err returns the default store's last system load error.
func Err() error { return Default().Err() }

// System returns the default store's system config.
func System() Config { return Default().System() }

// App returns the default store's config for a named app.
func App(name string) Config { return Default().App(name) }

// Reload re-reads the default store from disk.
func Reload() error { return Default().Reload() }

// SetSystem replaces the default store's system config in memory.
func SetSystem(cfg Config) { Default().Set("", cfg) }

// SetApp replaces the default store's config for an app in memory.
func SetApp(name string, cfg Config) {
	if name != "" {
		Default().Set(name, cfg)
	}
}

// SaveSystem writes the default store's system config.
func SaveSystem() error { return Default().Save("") }

// SaveApp writes the default store's config for an app.
func SaveApp(name string) error {
	if name == "" {
		return nil
	}
	return Default().Save(name)
}

var errNoRoot = errors.New("config: no config directory")

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
