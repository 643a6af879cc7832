// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	st := ParseStyle("height: 4; margin: 1 2;bad; :x; color : red ;")
	assert.Equal(t, "4", st.Get("height"))
	assert.Equal(t, "1 2", st.Get("margin"))
	assert.Equal(t, "red", st.Get("color"))
	assert.Equal(t, "", st.Get("bad"))
	assert.Equal(t, "height: 4; margin: 1 2; color: red", st.String())
}

func TestStyleSet(t *testing.T) {
	st := ParseStyle("a: 1; b: 2")
	st.Set("a", "3")
	st.Set("c", "4")
	assert.Equal(t, "a: 3; b: 2; c: 4", st.String())

	st.Set("b", "")
	assert.Equal(t, "a: 3; c: 4", st.String())

	st.Set("missing", "")
	assert.Equal(t, "a: 3; c: 4", st.String())
}

func TestStyleEdges(t *testing.T) {
	cases := []struct {
		style string
		want  Edges
	}{
		{"", Edges{}},
		{"margin: 2", Edges{2, 2, 2, 2}},
		{"margin: 1 3", Edges{1, 3, 1, 3}},
		{"margin: 1 2 3", Edges{1, 2, 3, 2}},
		{"margin: 1 2 3 4", Edges{1, 2, 3, 4}},
		{"margin: 1px auto", Edges{1, 0, 1, 0}},
		{"margin: 1; margin-top: 5; margin-left: 0", Edges{5, 1, 1, 0}},
		{"margin-bottom: 7", Edges{0, 0, 7, 0}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseStyle(tc.style).edges("margin"), tc.style)
	}
}

func TestStyleLength(t *testing.T) {
	st := ParseStyle("height: 12px; width: wide")
	h, ok := st.length("height")
	assert.True(t, ok)
	assert.Equal(t, 12.0, h)

	_, ok = st.length("width")
	assert.False(t, ok)
	_, ok = st.length("top")
	assert.False(t, ok)
}
