// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func readDisk(t *testing.T, path string) Config {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	return disk
}

func TestSystemDefaultsWritten(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	if err := store.Err(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := store.System().GetFloat("engine", "speed", 0); got != 0.6 {
		t.Fatalf("expected engine speed 0.6, got %v", got)
	}

	disk := readDisk(t, filepath.Join(root, systemConfigName))
	if disk.Section("scheduler") == nil {
		t.Fatalf("expected scheduler section to be present")
	}
	if got := disk.GetStrings("engine", "selectors"); len(got) != 1 || got[0] != ".scrollar" {
		t.Fatalf("expected default selectors, got %v", got)
	}
}

func TestSystemDefaultsFillMissingKeys(t *testing.T) {
	root := t.TempDir()
	if err := writeConfig(filepath.Join(root, systemConfigName), Config{
		"engine": map[string]interface{}{"speed": 0.25},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := NewStore(root).System()
	if got := cfg.GetFloat("engine", "speed", 0); got != 0.25 {
		t.Fatalf("expected user speed to win, got %v", got)
	}
	if got := cfg.GetFloat("engine", "distance", 0); got != 1000 {
		t.Fatalf("expected default distance, got %v", got)
	}
	if got := cfg.GetInt("scheduler", "fps", 0); got != 60 {
		t.Fatalf("expected default fps, got %d", got)
	}
}

func TestBrokenSystemFileIsKept(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, systemConfigName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewStore(root)
	if store.Err() == nil {
		t.Fatalf("expected a load error")
	}
	if got := store.System().GetFloat("engine", "speed", 0); got != 0.6 {
		t.Fatalf("expected in-memory defaults, got %v", got)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{not json" {
		t.Fatalf("broken file was rewritten: %q, %v", data, err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewStore("")
	if err := store.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.System().GetInt("scheduler", "fps", 0); got != 60 {
		t.Fatalf("expected default fps, got %d", got)
	}
	if store.App("parallaxdemo").Section("demo") == nil {
		t.Fatalf("expected demo defaults")
	}
	if err := store.Save(""); err == nil {
		t.Fatalf("expected save without a root to fail")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	store.Set("", Config{
		"engine": map[string]interface{}{
			"wrapper": "#main",
		},
	})
	if err := store.Save(""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	disk := readDisk(t, filepath.Join(root, systemConfigName))
	if got := disk.GetString("engine", "wrapper", ""); got != "#main" {
		t.Fatalf("expected wrapper to be #main, got %q", got)
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	root := t.TempDir()
	cfg := NewStore(root).App("parallaxdemo")
	if cfg.Section("demo") == nil {
		t.Fatalf("expected demo section to be present")
	}
	if got := cfg.GetString("demo", "highlight_style", ""); got != "catppuccin-mocha" {
		t.Fatalf("expected highlight style default, got %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "apps", "parallaxdemo", "config.json")); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestSaveAppWritesUpdates(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	store.Set("parallaxdemo", Config{
		"demo": map[string]interface{}{
			"show_status": false,
		},
	})
	if err := store.Save("parallaxdemo"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	disk := readDisk(t, filepath.Join(root, "apps", "parallaxdemo", "config.json"))
	section := disk.Section("demo")
	if section == nil {
		t.Fatalf("expected demo section")
	}
	if got, _ := section["show_status"].(bool); got {
		t.Fatalf("expected show_status false")
	}
}

func TestReloadPicksUpEdits(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	store.App("parallaxdemo")

	if err := writeConfig(filepath.Join(root, "apps", "parallaxdemo", "config.json"), Config{
		"demo": map[string]interface{}{"scroll_step": 3},
	}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writeConfig(filepath.Join(root, systemConfigName), Config{
		"scheduler": map[string]interface{}{"fps": 24},
	}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := store.System().GetInt("scheduler", "fps", 0); got != 24 {
		t.Fatalf("expected reloaded fps, got %d", got)
	}
	if got := store.App("parallaxdemo").GetInt("demo", "scroll_step", 0); got != 3 {
		t.Fatalf("expected reloaded scroll step, got %d", got)
	}
}

func TestSystemMigrationFromLegacy(t *testing.T) {
	root := t.TempDir()
	if err := writeConfig(filepath.Join(root, legacyConfigName), Config{
		"wrapper":  "#main",
		"speed":    0.4,
		"distance": 800,
		"selector": ".hero",
		"fps":      30,
	}); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}

	cfg := NewStore(root).System()
	if got := cfg.GetString("engine", "wrapper", ""); got != "#main" {
		t.Fatalf("expected wrapper migration, got %q", got)
	}
	if got := cfg.GetFloat("engine", "speed", 0); got != 0.4 {
		t.Fatalf("expected speed migration, got %v", got)
	}
	if got := cfg.GetFloat("engine", "distance", 0); got != 800 {
		t.Fatalf("expected distance migration, got %v", got)
	}
	if got := cfg.GetStrings("engine", "selectors"); len(got) != 1 || got[0] != ".hero" {
		t.Fatalf("expected selector migration, got %v", got)
	}
	if got := cfg.GetInt("scheduler", "fps", 0); got != 30 {
		t.Fatalf("expected fps migration, got %d", got)
	}
	if !cfg.GetBool("engine", "vertical", false) {
		t.Fatalf("expected vertical default after migration")
	}
	if _, err := os.Stat(filepath.Join(root, systemConfigName)); err != nil {
		t.Fatalf("expected migrated config to be written: %v", err)
	}
}

func TestDefaultStoreUsesConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	defaultOnce = sync.Once{}
	defaultStore = nil
	t.Cleanup(func() {
		defaultOnce = sync.Once{}
		defaultStore = nil
	})

	if got, want := Default().Root(), filepath.Join(home, "texelscroll"); got != want {
		t.Fatalf("expected root %s, got %s", want, got)
	}
	SetApp("parallaxdemo", Config{"demo": map[string]interface{}{"page_step": 7}})
	if err := SaveApp("parallaxdemo"); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}
	disk := readDisk(t, filepath.Join(home, "texelscroll", "apps", "parallaxdemo", "config.json"))
	if got := disk.GetInt("demo", "page_step", 0); got != 7 {
		t.Fatalf("expected saved page step, got %d", got)
	}
	if err := Err(); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
}

func TestGetters(t *testing.T) {
	cfg := Config{
		"demo": map[string]interface{}{
			"n":    float64(2.9),
			"s":    "7",
			"b":    "true",
			"z":    float64(0),
			"bad":  []interface{}{},
			"word": "x",
		},
	}
	if got := cfg.GetInt("demo", "n", 0); got != 2 {
		t.Fatalf("expected truncated int, got %d", got)
	}
	if got := cfg.GetInt("demo", "s", 0); got != 7 {
		t.Fatalf("expected parsed int, got %d", got)
	}
	if got := cfg.GetInt("demo", "word", 5); got != 5 {
		t.Fatalf("expected default for non-numeric string, got %d", got)
	}
	if !cfg.GetBool("demo", "b", false) || cfg.GetBool("demo", "z", true) {
		t.Fatalf("unexpected bool conversion")
	}
	if got := cfg.GetFloat("demo", "bad", 1.5); got != 1.5 {
		t.Fatalf("expected default float, got %v", got)
	}
	if got := cfg.GetString("demo", "n", "d"); got != "d" {
		t.Fatalf("expected default string, got %q", got)
	}
}

func TestGetStrings(t *testing.T) {
	cfg := Config{
		"engine": map[string]interface{}{
			"list":   []interface{}{".a", 3, "", ".b"},
			"single": ".c",
			"typed":  []string{".d"},
			"empty":  "",
		},
	}
	if got := cfg.GetStrings("engine", "list"); len(got) != 2 || got[0] != ".a" || got[1] != ".b" {
		t.Fatalf("unexpected list %v", got)
	}
	if got := cfg.GetStrings("engine", "single"); len(got) != 1 || got[0] != ".c" {
		t.Fatalf("unexpected single %v", got)
	}
	if got := cfg.GetStrings("engine", "typed"); len(got) != 1 || got[0] != ".d" {
		t.Fatalf("unexpected typed %v", got)
	}
	if got := cfg.GetStrings("engine", "empty"); got != nil {
		t.Fatalf("expected nil for empty string, got %v", got)
	}
	if got := cfg.GetStrings("missing", "list"); got != nil {
		t.Fatalf("expected nil for missing section, got %v", got)
	}
}

func TestCloneCopiesLists(t *testing.T) {
	orig := Config{
		"engine": Section{"selectors": []interface{}{".a"}},
	}
	clone := Clone(orig)
	clone.Section("engine")["selectors"].([]interface{})[0] = ".b"
	if got := orig.GetStrings("engine", "selectors"); got[0] != ".a" {
		t.Fatalf("clone shares selector list with original")
	}
}
