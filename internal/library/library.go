// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/library/library.go
// Summary: SQLite catalog of saved pages.
//
// Pages are stored by name with their title and HTML. Title and markup are
// indexed with an FTS5 trigram table so any substring can be searched.

package library

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelscroll/config"
)

var (
	// ErrPageNotFound is returned when no page has the requested name.
	ErrPageNotFound = errors.New("library: page not found")
	// ErrInvalidName is returned for blank page names.
	ErrInvalidName = errors.New("library: page name is required")
)

// Page is a saved HTML page.
type Page struct {
	Name    string
	Title   string
	HTML    string
	SavedAt time.Time
}

// Entry describes a page without its markup.
type Entry struct {
	Name    string
	Title   string
	Size    int
	SavedAt time.Time
}

// Library is a page catalog backed by a SQLite file.
type Library struct {
	db *sql.DB
	mu sync.Mutex
}

const librarySchemaVersion = 1

const librarySchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS pages (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL DEFAULT '',
    html TEXT NOT NULL,
    saved_at INTEGER NOT NULL         -- UnixNano
);

CREATE VIRTUAL TABLE IF NOT EXISTS pages_fts USING fts5(
    title,
    html,
    content='pages',
    content_rowid='id',
    tokenize='trigram'
);

CREATE TRIGGER IF NOT EXISTS pages_ai AFTER INSERT ON pages BEGIN
    INSERT INTO pages_fts(rowid, title, html) VALUES (new.id, new.title, new.html);
END;

CREATE TRIGGER IF NOT EXISTS pages_au AFTER UPDATE ON pages BEGIN
    INSERT INTO pages_fts(pages_fts, rowid, title, html) VALUES ('delete', old.id, old.title, old.html);
    INSERT INTO pages_fts(rowid, title, html) VALUES (new.id, new.title, new.html);
END;

CREATE TRIGGER IF NOT EXISTS pages_ad AFTER DELETE ON pages BEGIN
    INSERT INTO pages_fts(pages_fts, rowid, title, html) VALUES ('delete', old.id, old.title, old.html);
END;
`

// DefaultPath returns library.db inside the texelscroll config directory.
func DefaultPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "library.db"), nil
}

// Open opens or creates the catalog at path.
func Open(path string) (*Library, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(librarySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Library{db: db}, nil
}

func checkSchemaVersion(db *sql.DB) error {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version == librarySchemaVersion {
		return nil
	}
	if version > librarySchemaVersion {
		return fmt.Errorf("library schema version %d is newer than supported %d", version, librarySchemaVersion)
	}
	log.Printf("Library: Initialising schema version %d", librarySchemaVersion)
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("failed to reset schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", librarySchemaVersion); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	return nil
}

// Save stores p under p.Name, replacing any page with the same name. A zero
// SavedAt is set to the current time.
func (l *Library) Save(p Page) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrInvalidName
	}
	if p.SavedAt.IsZero() {
		p.SavedAt = time.Now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.db.Exec(`
		INSERT INTO pages (name, title, html, saved_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			title = excluded.title,
			html = excluded.html,
			saved_at = excluded.saved_at`,
		name, p.Title, p.HTML, p.SavedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// Load returns the named page or ErrPageNotFound.
func (l *Library) Load(name string) (Page, error) {
	name = strings.TrimSpace(name)
	l.mu.Lock()
	defer l.mu.Unlock()
	var p Page
	var savedAt int64
	err := l.db.QueryRow(
		"SELECT name, title, html, saved_at FROM pages WHERE name = ?", name,
	).Scan(&p.Name, &p.Title, &p.HTML, &savedAt)
	if err == sql.ErrNoRows {
		return Page{}, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	if err != nil {
		return Page{}, fmt.Errorf("load %q: %w", name, err)
	}
	p.SavedAt = time.Unix(0, savedAt)
	return p, nil
}

// List returns every page ordered by name.
func (l *Library) List() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows, err := l.db.Query(
		"SELECT name, title, length(html), saved_at FROM pages ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return scanEntries(rows)
}

// Search returns up to limit pages whose title or markup contains query,
// most recently saved first. Queries shorter than three characters fall back
// to a plain substring scan, since trigrams need at least three.
func (l *Library) Search(query string, limit int) ([]Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var rows *sql.Rows
	var err error
	if utf8.RuneCountInString(query) < 3 {
		like := "%" + escapeLike(query) + "%"
		rows, err = l.db.Query(`
			SELECT name, title, length(html), saved_at FROM pages
			WHERE title LIKE ? ESCAPE '\' OR html LIKE ? ESCAPE '\'
			ORDER BY saved_at DESC LIMIT ?`, like, like, limit)
	} else {
		rows, err = l.db.Query(`
			SELECT p.name, p.title, length(p.html), p.saved_at
			FROM pages_fts f JOIN pages p ON p.id = f.rowid
			WHERE pages_fts MATCH ?
			ORDER BY p.saved_at DESC LIMIT ?`, quoteFTS(query), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return scanEntries(rows)
}

// Delete removes the named page.
func (l *Library) Delete(name string) error {
	name = strings.TrimSpace(name)
	l.mu.Lock()
	defer l.mu.Unlock()
	res, err := l.db.Exec("DELETE FROM pages WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	return nil
}

// Close closes the database.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db.Close()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var savedAt int64
		if err := rows.Scan(&e.Name, &e.Title, &e.Size, &savedAt); err != nil {
			return nil, err
		}
		e.SavedAt = time.Unix(0, savedAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// quoteFTS turns free text into a single FTS5 string literal.
func quoteFTS(q string) string {
	return `"` + strings.ReplaceAll(q, `"`, `""`) + `"`
}

func escapeLike(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q)
}
