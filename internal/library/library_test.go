// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package library

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "nested", "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lib := openTemp(t)
	at := time.Unix(1700000000, 42)

	require.NoError(t, lib.Save(Page{Name: " hero ", Title: "Hero", HTML: "<body>hi</body>", SavedAt: at}))

	p, err := lib.Load("hero")
	require.NoError(t, err)
	assert.Equal(t, "hero", p.Name)
	assert.Equal(t, "Hero", p.Title)
	assert.Equal(t, "<body>hi</body>", p.HTML)
	assert.True(t, at.Equal(p.SavedAt))
}

func TestSaveReplacesExisting(t *testing.T) {
	lib := openTemp(t)
	require.NoError(t, lib.Save(Page{Name: "a", HTML: "<body>one</body>"}))
	require.NoError(t, lib.Save(Page{Name: "a", Title: "Second", HTML: "<body>two</body>"}))

	p, err := lib.Load("a")
	require.NoError(t, err)
	assert.Equal(t, "<body>two</body>", p.HTML)
	assert.False(t, p.SavedAt.IsZero())

	entries, err := lib.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveRejectsBlankName(t *testing.T) {
	lib := openTemp(t)
	assert.ErrorIs(t, lib.Save(Page{Name: "  ", HTML: "x"}), ErrInvalidName)
}

func TestLoadAndDeleteMissing(t *testing.T) {
	lib := openTemp(t)

	_, err := lib.Load("nope")
	assert.True(t, errors.Is(err, ErrPageNotFound))

	err = lib.Delete("nope")
	assert.True(t, errors.Is(err, ErrPageNotFound))
}

func TestListAndDelete(t *testing.T) {
	lib := openTemp(t)
	require.NoError(t, lib.Save(Page{Name: "b", Title: "Bee", HTML: "12345"}))
	require.NoError(t, lib.Save(Page{Name: "a", Title: "Ay", HTML: "123"}))

	entries, err := lib.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, 3, entries[0].Size)
	assert.Equal(t, "Bee", entries[1].Title)

	require.NoError(t, lib.Delete("a"))
	entries, err = lib.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Name)
}

func TestSearch(t *testing.T) {
	lib := openTemp(t)
	base := time.Unix(1700000000, 0)
	require.NoError(t, lib.Save(Page{Name: "old", Title: "Parallax intro", HTML: `<div class="scrollar">x</div>`, SavedAt: base}))
	require.NoError(t, lib.Save(Page{Name: "new", Title: "Other", HTML: `<div class="scrollar">y</div>`, SavedAt: base.Add(time.Hour)}))
	require.NoError(t, lib.Save(Page{Name: "plain", Title: "Plain", HTML: `<p>nothing</p>`, SavedAt: base}))

	got, err := lib.Search("scrollar", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, "old", got[1].Name)

	got, err = lib.Search("PARALLAX", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].Name)

	got, err = lib.Search("<p", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "plain", got[0].Name)

	got, err = lib.Search("scrollar", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = lib.Search("   ", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchFollowsUpdatesAndDeletes(t *testing.T) {
	lib := openTemp(t)
	require.NoError(t, lib.Save(Page{Name: "a", HTML: "alpha"}))
	require.NoError(t, lib.Save(Page{Name: "a", HTML: "omega"}))

	got, err := lib.Search("alpha", 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, lib.Delete("a"))
	got, err = lib.Search("omega", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReopenKeepsPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	lib, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, lib.Save(Page{Name: "keep", HTML: "<body></body>"}))
	require.NoError(t, lib.Close())

	lib, err = Open(path)
	require.NoError(t, err)
	defer lib.Close()
	_, err = lib.Load("keep")
	assert.NoError(t, err)
}

func TestDefaultPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "texelscroll", "library.db"), path)
}
