// Package sqlite implements a snapshot Store for the country catalog on top
// of a single SQLite table. It honours the same load-all/save-all contract as
// the CSV store: every Save replaces the table contents inside one
// transaction, in catalog order.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

// Store keeps the catalog snapshot in a SQLite database file.
type Store struct {
	path    string
	db      *sql.DB
	dropped int
}

var (
	_ types.Store        = (*Store)(nil)
	_ types.LoadReporter = (*Store)(nil)
)

// Open opens (creating if needed) the database at path and ensures the
// countries table exists. The caller must Close the returned Store.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &types.IOError{Op: "open", Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &types.IOError{Op: "open", Path: path, Err: err}
	}
	// One writer, one process: a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createCountries); err != nil {
		db.Close()
		return nil, &types.IOError{Op: "open", Path: path, Err: fmt.Errorf("create schema: %w", err)}
	}

	return &Store{path: path, db: db}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Dropped returns the number of rows the last Load discarded.
func (s *Store) Dropped() int {
	return s.dropped
}

// Load returns all rows ordered by their saved position. Rows with an empty
// name or negative counts are skipped.
func (s *Store) Load() ([]types.Country, error) {
	s.dropped = 0

	rows, err := s.db.Query(selectCountries)
	if err != nil {
		return nil, &types.IOError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()

	countries := []types.Country{}
	for rows.Next() {
		var c types.Country
		if err := rows.Scan(&c.Name, &c.Population, &c.Area, &c.Continent); err != nil {
			s.dropped++
			continue
		}
		if c.Name == "" || c.Population < 0 || c.Area < 0 {
			s.dropped++
			continue
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.IOError{Op: "load", Path: s.path, Err: err}
	}
	return countries, nil
}

// Save replaces every row with countries. On failure the previous snapshot
// is left intact.
func (s *Store) Save(countries []types.Country) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteCountries); err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}

	stmt, err := tx.Prepare(insertCountry)
	if err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	defer stmt.Close()

	for i, c := range countries {
		if _, err := stmt.Exec(i, c.Name, c.Population, c.Area, c.Continent); err != nil {
			return &types.IOError{Op: "save", Path: s.path, Err: fmt.Errorf("insert %q: %w", c.Name, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Close releases the database handle. It is safe to call more than once.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
