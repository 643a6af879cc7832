// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/attrs.go
// Summary: Per-element override attributes.

package parallax

import (
	"math"
	"strconv"
	"strings"
)

const (
	// SpeedAttr overrides the engine speed for one element.
	SpeedAttr = "data-scrollar-speed"
	// WrapperAttr overrides the engine wrapper for one element.
	WrapperAttr = "data-scrollar-wrapper"
)

// Overrides are the resolved per-element attribute values.
type Overrides struct {
	Speed   float64
	Wrapper string
}

// ReadOverrides reads the override attributes of n. A missing, unparsable or
// zero speed falls back to defaultSpeed.
func ReadOverrides(n Node, defaultSpeed float64) Overrides {
	o := Overrides{
		Speed:   defaultSpeed,
		Wrapper: strings.TrimSpace(n.Attr(WrapperAttr)),
	}
	if raw := strings.TrimSpace(n.Attr(SpeedAttr)); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v != 0 && !math.IsNaN(v) {
			o.Speed = v
		}
	}
	return o
}
