// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: page/style.go
// Summary: Inline style declarations and box edge parsing.

package page

import (
	"strings"

	"github.com/framegrace/texelscroll/parallax"
)

type declaration struct {
	name  string
	value string
}

// Style is an ordered list of inline style declarations.
type Style struct {
	decls []declaration
}

// ParseStyle reads a style attribute such as "height: 4; margin: 1 0".
// Malformed declarations are skipped.
func ParseStyle(s string) Style {
	var st Style
	for _, part := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		st.Set(name, value)
	}
	return st
}

// Get returns the value of a property or "".
func (s Style) Get(name string) string {
	for _, d := range s.decls {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// Set replaces or appends a property. An empty value removes it.
func (s *Style) Set(name, value string) {
	for i, d := range s.decls {
		if d.name != name {
			continue
		}
		if value == "" {
			s.decls = append(s.decls[:i], s.decls[i+1:]...)
		} else {
			s.decls[i].value = value
		}
		return
	}
	if value != "" {
		s.decls = append(s.decls, declaration{name: name, value: value})
	}
}

// String serialises the declarations back to attribute form.
func (s Style) String() string {
	parts := make([]string, 0, len(s.decls))
	for _, d := range s.decls {
		parts = append(parts, d.name+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// length reads a numeric property, reporting whether it was set and valid.
func (s Style) length(name string) (float64, bool) {
	raw := s.Get(name)
	if raw == "" {
		return 0, false
	}
	return parallax.ParseLength(raw)
}

// Edges are per-side lengths such as margins.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// edges resolves a shorthand property (margin, padding) and its per-side
// longhands; longhands win.
func (s Style) edges(prop string) Edges {
	var e Edges
	if raw := s.Get(prop); raw != "" {
		var vals []float64
		for _, f := range strings.Fields(raw) {
			v, ok := parallax.ParseLength(f)
			if !ok {
				v = 0
			}
			vals = append(vals, v)
		}
		switch len(vals) {
		case 1:
			e = Edges{vals[0], vals[0], vals[0], vals[0]}
		case 2:
			e = Edges{vals[0], vals[1], vals[0], vals[1]}
		case 3:
			e = Edges{vals[0], vals[1], vals[2], vals[1]}
		case 4:
			e = Edges{vals[0], vals[1], vals[2], vals[3]}
		}
	}
	if v, ok := s.length(prop + "-top"); ok {
		e.Top = v
	}
	if v, ok := s.length(prop + "-right"); ok {
		e.Right = v
	}
	if v, ok := s.length(prop + "-bottom"); ok {
		e.Bottom = v
	}
	if v, ok := s.length(prop + "-left"); ok {
		e.Left = v
	}
	return e
}
