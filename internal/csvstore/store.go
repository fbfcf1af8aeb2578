// Package csvstore persists the country catalog as a single CSV snapshot.
// Every Save rewrites the whole file atomically; there are no partial writes.
package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

const filePerms = 0o644

// utf8BOM is tolerated at the start of files saved by spreadsheet tools.
const utf8BOM = "\ufeff"

// Store reads and writes a CSV snapshot at a fixed path.
type Store struct {
	path    string
	dropped int
}

var (
	_ types.Store        = (*Store)(nil)
	_ types.LoadReporter = (*Store)(nil)
)

// New returns a Store for the CSV file at path. The file is not touched until
// Load or Save is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot location.
func (s *Store) Path() string {
	return s.path
}

// Dropped returns the number of rows the last Load discarded.
func (s *Store) Dropped() int {
	return s.dropped
}

// Load reads every valid row of the snapshot. A missing file is created with
// only the header row. Rows that cannot be parsed, or that have an empty
// name, a wrong field count, or a population/area that is not a non-negative
// integer are skipped.
func (s *Store) Load() ([]types.Country, error) {
	s.dropped = 0

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.Save(nil); err != nil {
			return nil, err
		}
		return []types.Country{}, nil
	}
	if err != nil {
		return nil, &types.IOError{Op: "load", Path: s.path, Err: err}
	}

	countries, dropped, err := decode(bytes.NewReader(bytes.TrimPrefix(data, []byte(utf8BOM))))
	if err != nil {
		return nil, &types.IOError{Op: "load", Path: s.path, Err: err}
	}
	s.dropped = dropped
	return countries, nil
}

// Save replaces the snapshot with countries in the given order, header first.
// The parent directory is created if needed.
func (s *Store) Save(countries []types.Country) error {
	var buf bytes.Buffer
	if err := encode(&buf, countries); err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	// atomic.WriteFile leaves new files with the temp file's 0600 mode.
	if err := os.Chmod(s.path, filePerms); err != nil {
		return &types.IOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// decode parses a snapshot. An empty input is an empty catalog.
func decode(r io.Reader) ([]types.Country, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	// Hand-edited files may hold a stray quote inside a field.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []types.Country{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	if !slices.Equal(header, types.Header) {
		return nil, 0, fmt.Errorf("%w: got %q", types.ErrBadHeader, strings.Join(header, ","))
	}

	countries := []types.Country{}
	dropped := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			dropped++
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading row: %w", err)
		}
		c, ok := parseRow(row)
		if !ok {
			dropped++
			continue
		}
		countries = append(countries, c)
	}
	return countries, dropped, nil
}

// parseRow coerces one data row. Continents are not re-validated.
func parseRow(row []string) (types.Country, bool) {
	if len(row) != len(types.Header) {
		return types.Country{}, false
	}
	if row[0] == "" {
		return types.Country{}, false
	}
	population, err := types.ParseCount(types.FieldPopulation, row[1])
	if err != nil {
		return types.Country{}, false
	}
	area, err := types.ParseCount(types.FieldArea, row[2])
	if err != nil {
		return types.Country{}, false
	}
	return types.Country{
		Name:       row[0],
		Population: population,
		Area:       area,
		Continent:  row[3],
	}, true
}

func encode(w io.Writer, countries []types.Country) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range countries {
		row := []string{
			c.Name,
			strconv.FormatInt(c.Population, 10),
			strconv.FormatInt(c.Area, 10),
			c.Continent,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %q: %w", c.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
