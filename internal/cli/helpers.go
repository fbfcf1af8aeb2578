// Shared helpers for atlas CLI commands.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/atlas/internal/catalog"
	"github.com/mesh-intelligence/atlas/internal/csvstore"
	"github.com/mesh-intelligence/atlas/internal/paths"
	"github.com/mesh-intelligence/atlas/internal/sqlite"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// openStore creates the configured backend. The returned close function must
// be called when the command finishes.
func openStore(cfg types.Config) (types.Store, func() error, error) {
	path := paths.Snapshot(cfg)

	switch cfg.Backend {
	case types.BackendCSV:
		return csvstore.New(path), func() error { return nil }, nil
	case types.BackendSQLite:
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}

// openCatalog resolves the backend, loads the snapshot and returns the
// catalog. A load failure is a system error and aborts the command.
func (a *app) openCatalog() (*catalog.Catalog, func() error, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, nil, &sysError{err}
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, &sysError{fmt.Errorf("open %s store: %w", cfg.Backend, err)}
	}

	cat, err := catalog.Open(store, catalog.WithLogger(a.log.With().Str("backend", cfg.Backend).Logger()))
	if err != nil {
		closeStore()
		return nil, nil, &sysError{err}
	}
	return cat, closeStore, nil
}

// withCatalog opens the catalog, runs fn and closes the store.
func (a *app) withCatalog(fn func(cat *catalog.Catalog) error) (err error) {
	cat, closeStore, err := a.openCatalog()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore(); cerr != nil && err == nil {
			err = &sysError{fmt.Errorf("close store: %w", cerr)}
		}
	}()
	return fn(cat)
}

// writeJSON prints v as indented JSON.
func (a *app) writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &sysError{fmt.Errorf("marshal JSON: %w", err)}
	}
	fmt.Fprintln(a.out, string(out))
	return nil
}
