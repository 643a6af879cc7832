// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/config.go
// Summary: Engine configuration and its mapping from the config store.

package parallax

import (
	"math"

	"github.com/framegrace/texelscroll/config"
)

const (
	// DefaultSelector is used when New receives no selectors.
	DefaultSelector = ".scrollar"
	// DefaultSpeed moves an element 0.6 rows per scrolled row.
	DefaultSpeed = 0.6
	// DefaultDistance is the culling threshold in rows of real scroll.
	DefaultDistance = 1000
	// DefaultFPS is the fallback frame rate of FrameClock.
	DefaultFPS = 60
)

// Config is fixed once an Engine is constructed. Start from DefaultConfig:
// a zero Speed or a non-positive Distance is replaced by its default in New,
// but a false Vertical disables scroll tracking.
type Config struct {
	// Wrapper is a selector for the reference container; "" means the document.
	Wrapper string
	// Vertical must be true; horizontal tracking is not supported.
	Vertical bool
	// Speed is the default per-element displacement multiplier.
	Speed float64
	// Distance skips an element's frame update once |target| exceeds it.
	Distance float64
	// Callback runs once per animated frame.
	Callback func()
}

// DefaultConfig returns the stock engine settings.
func DefaultConfig() Config {
	return Config{
		Vertical: true,
		Speed:    DefaultSpeed,
		Distance: DefaultDistance,
	}
}

// withDefaults fills unset numeric fields.
func (c Config) withDefaults() Config {
	if c.Speed == 0 || math.IsNaN(c.Speed) {
		c.Speed = DefaultSpeed
	}
	if c.Distance <= 0 || math.IsNaN(c.Distance) {
		c.Distance = DefaultDistance
	}
	return c
}

// ConfigFromStore reads the engine and scheduler sections of a system config.
// It returns the engine config, the element selectors and the frame rate.
func ConfigFromStore(cfg config.Config) (Config, []string, int) {
	out := DefaultConfig()
	out.Wrapper = cfg.GetString("engine", "wrapper", "")
	out.Vertical = cfg.GetBool("engine", "vertical", true)
	out.Speed = cfg.GetFloat("engine", "speed", DefaultSpeed)
	out.Distance = cfg.GetFloat("engine", "distance", DefaultDistance)

	selectors := cfg.GetStrings("engine", "selectors")
	if len(selectors) == 0 {
		selectors = []string{DefaultSelector}
	}

	fps := cfg.GetInt("scheduler", "fps", DefaultFPS)
	if fps <= 0 {
		fps = DefaultFPS
	}
	return out, selectors, fps
}
