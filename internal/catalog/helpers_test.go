package catalog

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

// memStore is an in-memory Store that records every snapshot it is given.
type memStore struct {
	loaded  []types.Country
	loadErr error
	saveErr error
	saves   [][]types.Country
}

func (m *memStore) Load() ([]types.Country, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.loaded), nil
}

func (m *memStore) Save(countries []types.Country) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, slices.Clone(countries))
	return nil
}

func (m *memStore) Dropped() int { return 2 }

// last returns the most recent snapshot.
func (m *memStore) last(t *testing.T) []types.Country {
	t.Helper()
	require.NotEmpty(t, m.saves, "expected at least one save")
	return m.saves[len(m.saves)-1]
}

var errDiskFull = &types.IOError{Op: "save", Path: "countries.csv", Err: errors.New("no space left on device")}

func newTestCatalog(t *testing.T, countries ...types.Country) (*Catalog, *memStore) {
	t.Helper()
	store := &memStore{loaded: countries}
	c, err := Open(store)
	require.NoError(t, err)
	return c, store
}

func names(countries []types.Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Name
	}
	return out
}
