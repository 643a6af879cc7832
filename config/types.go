// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.
// Notes: Values come from encoding/json (float64, bool, string, []interface{})
// or from Go callers (int, []string); both shapes are accepted.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. The empty name
// addresses the top level.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	switch v := c[sectionName].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults ensures a section has defaults without overwriting existing keys.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section, len(defaults))
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(sectionName, key string) (interface{}, bool) {
	section := c.Section(sectionName)
	if section == nil {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// GetString retrieves a string value from the config.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if v, ok := c.lookup(sectionName, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetFloat retrieves a float value from the config.
func (c Config) GetFloat(sectionName, key string, defaultValue float64) float64 {
	if v, ok := c.lookup(sectionName, key); ok {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return defaultValue
}

// GetInt retrieves an integer value from the config. Fractions are truncated.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	v, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	if s, isStr := v.(string); isStr {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return defaultValue
	}
	if f, ok := toFloat(v); ok {
		return int(f)
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the config. Numbers are true when
// non-zero.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	v, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
		return defaultValue
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return defaultValue
}

// GetStrings retrieves a list of strings from the config. A single string is
// returned as a one-element list; non-string and empty entries are skipped.
func (c Config) GetStrings(sectionName, key string) []string {
	v, _ := c.lookup(sectionName, key)
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if list != "" {
			return []string{list}
		}
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
