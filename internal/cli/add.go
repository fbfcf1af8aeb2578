package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atlas/internal/catalog"
)

func (a *app) newAddCmd() *cobra.Command {
	var name, population, area, continent string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a country to the catalog",
		Example: `  atlas add --name "Perú" --population 33715471 --area 1285216 --continent "América"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(cat *catalog.Catalog) error {
				if err := cat.AddRaw(name, population, area, continent); err != nil {
					return err
				}
				all := cat.All()
				added := all[len(all)-1]
				if a.flags.jsonMode {
					return a.writeJSON(added)
				}
				fmt.Fprintf(a.out, "Added %s\n", added.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "country name (required)")
	cmd.Flags().StringVar(&population, "population", "", "population, non-negative integer (required)")
	cmd.Flags().StringVar(&area, "area", "", "area, non-negative integer (required)")
	cmd.Flags().StringVar(&continent, "continent", "", "continent (required)")
	for _, f := range []string{"name", "population", "area", "continent"} {
		cmd.MarkFlagRequired(f)
	}
	return cmd
}
