// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Legacy config migration helpers.
// Notes: The legacy file is a flat scrollar options object:
// {"wrapper": "#main", "speed": 0.4, "distance": 800, "selector": ".hero"}.

package config

var legacyEngineKeys = []string{"wrapper", "vertical", "speed", "distance"}

// migrateLegacy copies engine options from scrollar.json into cfg.
func (s *Store) migrateLegacy(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	legacyPath, err := s.legacyPath()
	if err != nil {
		return false, err
	}
	legacy, exists, err := readConfig(legacyPath)
	if err != nil {
		return false, err
	}
	if !exists || legacy == nil {
		return false, nil
	}

	migrated := false
	engine := cfg.Section("engine")
	if engine == nil {
		engine = make(Section)
	}
	for _, key := range legacyEngineKeys {
		if _, ok := engine[key]; ok {
			continue
		}
		if val, ok := legacy[key]; ok {
			engine[key] = val
			migrated = true
		}
	}
	if _, ok := engine["selectors"]; !ok {
		switch sel := legacy["selector"].(type) {
		case string:
			if sel != "" {
				engine["selectors"] = []interface{}{sel}
				migrated = true
			}
		case []interface{}:
			engine["selectors"] = sel
			migrated = true
		}
	}
	if migrated {
		cfg["engine"] = engine
	}

	if fps, ok := legacy["fps"]; ok && cfg.Section("scheduler") == nil {
		cfg["scheduler"] = Section{"fps": fps}
		migrated = true
	}
	return migrated, nil
}
