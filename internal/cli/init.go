package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/atlas/internal/paths"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func (a *app) newInitCmd() *cobra.Command {
	var backend string
	var user bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and an empty catalog",
		Long: `Init writes config.yaml into the configuration directory and creates the
catalog snapshot if it does not exist. With --user the catalog is kept in the
platform data directory instead of the current working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(backend, user)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", types.BackendCSV, "storage backend (csv, sqlite)")
	cmd.Flags().BoolVar(&user, "user", false, "store the catalog in the platform data directory")
	return cmd
}

func (a *app) runInit(backend string, user bool) error {
	configDir, err := a.resolveConfigDir()
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}

	if err := (types.Config{Backend: backend}).Validate(); err != nil {
		return fmt.Errorf("backend %q: %w", backend, err)
	}

	dataDir := a.flags.dataDir
	if dataDir == "" && user {
		if dataDir, err = paths.UserDataDir(); err != nil {
			return &sysError{fmt.Errorf("resolve user data dir: %w", err)}
		}
	}

	// config.yaml was created with defaults by setup; rewrite it with the
	// chosen values.
	if err := writeConfig(paths.ConfigFile(configDir), configFile{
		Backend:   backend,
		DataDir:   dataDir,
		LogLevel:  a.cfg.GetString(cfgKeyLogLevel),
		LogFormat: a.cfg.GetString(cfgKeyLogFormat),
	}); err != nil {
		return &sysError{fmt.Errorf("write config: %w", err)}
	}

	a.cfg.Set(cfgKeyBackend, backend)
	a.cfg.Set(cfgKeyDataDir, dataDir)

	// Loading creates an empty snapshot when none exists.
	cfg, err := a.storeConfig()
	if err != nil {
		return &sysError{err}
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return &sysError{fmt.Errorf("initialize storage: %w", err)}
	}
	defer closeStore()
	countries, err := store.Load()
	if err != nil {
		return &sysError{fmt.Errorf("initialize storage: %w", err)}
	}

	fmt.Fprintf(a.out, "Catalog initialized at %s (%d countries)\n",
		paths.Snapshot(cfg), len(countries))
	return nil
}

// writeConfig marshals cfg into path, replacing any previous file.
func writeConfig(path string, cfg configFile) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
