package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atlas/internal/catalog"
	"github.com/mesh-intelligence/atlas/internal/menu"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show population and area statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(cat *catalog.Catalog) error {
				stats, err := cat.Statistics()
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return a.writeJSON(stats)
				}
				menu.PrintStats(a.out, stats)
				return nil
			})
		},
	}
}
