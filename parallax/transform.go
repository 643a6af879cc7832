// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/transform.go
// Summary: translate3d parsing, stripping and composition for transform strings.
// Notes: Malformed translate3d values read as zero displacement.

package parallax

import (
	"regexp"
	"strconv"
	"strings"
)

var translate3dPattern = regexp.MustCompile(`translate3d\(([^)]*)\)`)

// TranslateY returns the vertical component of the first translate3d in a
// transform string, or 0 when there is none or it cannot be read.
func TranslateY(transform string) float64 {
	m := translate3dPattern.FindStringSubmatch(transform)
	if m == nil {
		return 0
	}
	parts := strings.Split(m[1], ",")
	if len(parts) < 2 {
		return 0
	}
	y, ok := ParseLength(parts[1])
	if !ok {
		return 0
	}
	return y
}

// StripTranslate removes every translate3d function and normalises the
// whitespace between the remaining transform functions.
func StripTranslate(transform string) string {
	rest := translate3dPattern.ReplaceAllString(transform, " ")
	return strings.Join(strings.Fields(rest), " ")
}

// ComposeTransform builds the written transform: the vertical translation
// first, then the preserved functions.
func ComposeTransform(displacement float64, base string) string {
	t := "translate3d(0px, " + FormatLength(displacement) + "px, 0px)"
	if base == "" {
		return t
	}
	return t + " " + base
}

// FormatLength prints a length the shortest way that round-trips.
func FormatLength(v float64) string {
	if v == 0 {
		// drops the sign of -0
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseLength reads the longest numeric prefix of s after leading
// whitespace, so "12.5px" yields 12.5.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
