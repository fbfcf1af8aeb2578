package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atlas/internal/catalog"
	"github.com/mesh-intelligence/atlas/internal/menu"
)

func (a *app) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu()
		},
	}
}

// runMenu loads the catalog and runs the numbered menu until exit. An
// interactive terminal gets line editing; any other input is read line by
// line.
func (a *app) runMenu() error {
	return a.withCatalog(func(cat *catalog.Catalog) error {
		var in menu.LineReader
		if isTerminal(a.in) && menu.TerminalSupported() {
			tr := menu.NewTerminalReader()
			defer tr.Close()
			in = tr
		} else {
			in = menu.NewScannerReader(a.in, a.out)
		}
		if err := menu.New(cat, in, a.out, a.log).Run(); err != nil {
			return &sysError{err}
		}
		return nil
	})
}

// isTerminal reports whether r is a character device such as a TTY.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
