package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atlas/internal/catalog"
	"github.com/mesh-intelligence/atlas/internal/menu"
)

func (a *app) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Find countries whose name contains query",
		Long: `Search matches ignoring case, accents and extra spaces. Without a query
every country is listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, "")
			return a.withCatalog(func(cat *catalog.Catalog) error {
				results := cat.Search(query)
				if a.flags.jsonMode {
					return a.writeJSON(results)
				}
				if len(results) == 0 {
					fmt.Fprintf(a.out, "No country matches %q.\n", query)
					return nil
				}
				menu.PrintCountries(a.out, results)
				return nil
			})
		},
	}
}
