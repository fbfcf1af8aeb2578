package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "countries.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesEmptySnapshot(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	want := []types.Country{
		{Name: "Zambia", Population: 19610769, Area: 752612, Continent: "África"},
		{Name: "Albania", Population: 2793592, Area: 28748, Continent: "Europa"},
		{Name: "México", Population: 126014024, Area: 1964375, Continent: "América"},
	}

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// A shorter snapshot replaces the previous one entirely.
	require.NoError(t, s.Save(want[1:2]))
	got, err = s.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want[1:2], got); diff != "" {
		t.Fatalf("overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save([]types.Country{{Name: "Nepal", Population: 29136808, Area: 147181, Continent: "Asia"}}))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nepal", got[0].Name)
}

func TestLoadDropsInvalidRows(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.Exec(insertCountry, 0, "", 1, 1, "Asia")
	require.NoError(t, err)
	_, err = s.db.Exec(insertCountry, 1, "Laos", -1, 236800, "Asia")
	require.NoError(t, err)
	_, err = s.db.Exec(insertCountry, 2, "Bhutan", 777486, 38394, "Asia")
	require.NoError(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bhutan", got[0].Name)
	assert.Equal(t, 2, s.Dropped())
}

func TestCloseIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "countries.db"))
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
