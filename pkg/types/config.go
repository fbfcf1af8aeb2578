package types

import "errors"

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Supported backend names.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Default snapshot file names per backend.
const (
	DefaultCSVFile    = "countries.csv"
	DefaultSQLiteFile = "countries.db"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendCSV:    true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// FileName returns the configured snapshot file name or the backend default.
func (c Config) FileName() string {
	if c.File != "" {
		return c.File
	}
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultCSVFile
}
