// Package cli implements the atlas command-line interface: the interactive
// menu and scripted subcommands over the same catalog.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/atlas/internal/logging"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app carries the streams, flags and loaded configuration of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	flags  rootFlags
	cfg    *viper.Viper
	log    zerolog.Logger
}

// sysError marks failures of the environment (config, storage) as opposed to
// bad user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// Run executes the CLI with args (without the program name) and returns the
// process exit code.
func Run(in io.Reader, out, errOut io.Writer, args []string) int {
	a := &app{in: in, out: out, errOut: errOut, log: zerolog.Nop()}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(errOut, "error:", err)
	return exitCode(err)
}

// exitCode maps err to 1 for user errors and 2 for environment failures.
func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) || errors.Is(err, types.ErrIO) {
		return exitSysError
	}
	return exitUserError
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atlas",
		Short: "A country catalog kept in a flat file",
		Long: `atlas manages a catalog of countries (name, population, area, continent)
stored as a CSV snapshot. Run without a subcommand for the interactive menu.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: .atlas-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error, off)")

	root.AddCommand(a.newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newMenuCmd())
	root.AddCommand(a.newAddCmd())
	root.AddCommand(a.newUpdateCmd())
	root.AddCommand(a.newSearchCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newStatsCmd())

	return root
}

// setup loads config.yaml and builds the logger. The version command needs
// neither.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := a.resolveConfigDir()
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return &sysError{err}
	}
	if err := v.BindPFlag(cfgKeyLogLevel, cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return &sysError{fmt.Errorf("bind log-level flag: %w", err)}
	}
	a.cfg = v

	logCfg := logging.DefaultConfig()
	logCfg.Level = v.GetString(cfgKeyLogLevel)
	logCfg.Format = v.GetString(cfgKeyLogFormat)
	logCfg.Output = a.errOut
	logCfg.NoColor = logCfg.NoColor || !isTerminal(a.errOut)
	a.log = logging.New(logCfg)
	a.log.Debug().Str("config_dir", configDir).Msg("configuration loaded")
	return nil
}
