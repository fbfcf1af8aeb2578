package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atlas/internal/catalog"
)

func (a *app) newUpdateCmd() *cobra.Command {
	var population, area string

	cmd := &cobra.Command{
		Use:   "update <query>",
		Short: "Set population and area of the first country matching query",
		Long: `Update resolves <query> like search and changes the first match in
catalog order. When several names contain the query, the earliest added wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			return a.withCatalog(func(cat *catalog.Catalog) error {
				if err := cat.UpdateRaw(query, population, area); err != nil {
					return err
				}
				updated, err := cat.Resolve(query)
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return a.writeJSON(updated)
				}
				fmt.Fprintf(a.out, "Updated %s\n", updated.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&population, "population", "", "new population (required)")
	cmd.Flags().StringVar(&area, "area", "", "new area (required)")
	cmd.MarkFlagRequired("population")
	cmd.MarkFlagRequired("area")
	return cmd
}
