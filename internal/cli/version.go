package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the atlas release, overridable at link time with
// -ldflags "-X github.com/mesh-intelligence/atlas/internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/atlas"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the atlas version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "atlas v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
