// Package state records completed installations in a sqlite database so
// they can be listed and uninstalled later.
package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS installs (
    name          TEXT PRIMARY KEY,
    version       TEXT NOT NULL DEFAULT '',
    archive       TEXT NOT NULL,
    path          TEXT NOT NULL,
    links         TEXT NOT NULL DEFAULT '[]',
    desktop_entry TEXT NOT NULL DEFAULT '',
    installed_at  TEXT NOT NULL
);
`

type Record struct {
	Name         string
	Version      string
	Archive      string
	Path         string
	Links        []string
	DesktopEntry string
	InstalledAt  time.Time
}

type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Add(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	links, _ := json.Marshal(rec.Links)
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO installs
		(name, version, archive, path, links, desktop_entry, installed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Version, rec.Archive, rec.Path,
		string(links), rec.DesktopEntry, rec.InstalledAt.Format(time.RFC3339))
	return err
}

// Get returns nil without error when no record exists.
func (s *Store) Get(name string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT name, version, archive, path, links, desktop_entry, installed_at
		FROM installs WHERE name = ?`, name)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

func (s *Store) List() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, version, archive, path, links, desktop_entry, installed_at
		FROM installs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM installs WHERE name = ?", name)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanRecord(scan func(dest ...any) error) (*Record, error) {
	var rec Record
	var links, installedAt string

	if err := scan(&rec.Name, &rec.Version, &rec.Archive, &rec.Path,
		&links, &rec.DesktopEntry, &installedAt); err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(links), &rec.Links)
	rec.InstalledAt, _ = time.Parse(time.RFC3339, installedAt)
	return &rec, nil
}
