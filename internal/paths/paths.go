// Package paths decides where atlas keeps its config.yaml and its catalog
// snapshot.
//
// The configuration directory is taken from --config-dir, then
// ATLAS_CONFIG_DIR, then the user config directory. The data directory is
// taken from --data-dir, then data_dir in config.yaml, then ATLAS_DATA_DIR,
// then .atlas-db under the working directory. Every result is absolute.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

const (
	appName = "atlas"

	// DefaultDataDirName is created under the working directory when no
	// data directory is configured.
	DefaultDataDirName = ".atlas-db"

	// ConfigFileName is the file viper reads inside the config directory.
	ConfigFileName = "config.yaml"

	EnvConfigDir = "ATLAS_CONFIG_DIR"
	EnvDataDir   = "ATLAS_DATA_DIR"
)

// ErrNoDirectory is returned when no candidate directory can be determined.
var ErrNoDirectory = errors.New("cannot determine directory")

// Hooks into the OS, replaced in tests.
var (
	getwd         = os.Getwd
	userHomeDir   = os.UserHomeDir
	userConfigDir = os.UserConfigDir
)

// ConfigDir resolves the configuration directory from the --config-dir flag.
func ConfigDir(flag string) (string, error) {
	if dir, ok, err := firstSet(flag, os.Getenv(EnvConfigDir)); ok || err != nil {
		return dir, err
	}
	base, err := userConfigDir()
	if err != nil {
		return "", errors.Join(ErrNoDirectory, err)
	}
	return filepath.Join(base, appName), nil
}

// DataDir resolves the data directory from the --data-dir flag and the
// data_dir value read from config.yaml.
func DataDir(flag, fromConfig string) (string, error) {
	if dir, ok, err := firstSet(flag, fromConfig, os.Getenv(EnvDataDir)); ok || err != nil {
		return dir, err
	}
	cwd, err := getwd()
	if err != nil {
		return "", errors.Join(ErrNoDirectory, err)
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// UserDataDir is the per-user data directory written to config.yaml by
// `atlas init --user`: $XDG_DATA_HOME/atlas or ~/.local/share/atlas on
// Unix-like systems, the user config directory elsewhere.
func UserDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "plan9":
		base, err := userConfigDir()
		if err != nil {
			return "", errors.Join(ErrNoDirectory, err)
		}
		return filepath.Join(base, appName), nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, appName), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", errors.Join(ErrNoDirectory, err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// ConfigFile returns the location of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// Snapshot returns the catalog file for cfg: the backend's file name inside
// the data directory.
func Snapshot(cfg types.Config) string {
	return filepath.Join(cfg.DataDir, cfg.FileName())
}

// firstSet returns the first non-empty candidate made absolute. ok is false
// when every candidate is empty.
func firstSet(candidates ...string) (dir string, ok bool, err error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		dir, err = filepath.Abs(c)
		return dir, true, err
	}
	return "", false, nil
}
