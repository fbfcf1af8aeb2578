package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/atlas/internal/catalog"
	"github.com/mesh-intelligence/atlas/internal/menu"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// listOptions holds the filters and ordering of the list command.
type listOptions struct {
	continent     string
	minPopulation int64
	maxPopulation int64
	minArea       int64
	maxArea       int64
	sort          string
}

func (a *app) newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List countries with optional filters and ordering",
		Long: `List prints the catalog. Filters are ANDed together. A population or
area range needs both bounds; an inverted range lists nothing.

Sort modes: name, population, area-asc, area-desc.`,
		Example: `  atlas list --continent europa --sort area-desc
  atlas list --min-population 1000000 --max-population 50000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(func(cat *catalog.Catalog) error {
				results, err := listCountries(cmd, cat, opts)
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return a.writeJSON(results)
				}
				if len(results) == 0 {
					fmt.Fprintln(a.out, "No countries found.")
					return nil
				}
				menu.PrintCountries(a.out, results)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.continent, "continent", "", "only countries on this continent")
	cmd.Flags().Int64Var(&opts.minPopulation, "min-population", 0, "minimum population (inclusive)")
	cmd.Flags().Int64Var(&opts.maxPopulation, "max-population", 0, "maximum population (inclusive)")
	cmd.Flags().Int64Var(&opts.minArea, "min-area", 0, "minimum area (inclusive)")
	cmd.Flags().Int64Var(&opts.maxArea, "max-area", 0, "maximum area (inclusive)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort mode (name, population, area-asc, area-desc)")
	cmd.MarkFlagsRequiredTogether("min-population", "max-population")
	cmd.MarkFlagsRequiredTogether("min-area", "max-area")
	return cmd
}

// listCountries starts from the sorted (or catalog-ordered) view and keeps
// the countries every requested filter returns.
func listCountries(cmd *cobra.Command, cat *catalog.Catalog, opts listOptions) ([]types.Country, error) {
	results := cat.All()
	if opts.sort != "" {
		mode, err := catalog.ParseSortMode(opts.sort)
		if err != nil {
			return nil, err
		}
		if results, err = cat.Sorted(mode); err != nil {
			return nil, err
		}
	}

	var filters [][]types.Country
	if cmd.Flags().Changed("continent") {
		filters = append(filters, cat.FilterByContinent(opts.continent))
	}
	if cmd.Flags().Changed("min-population") {
		filters = append(filters, cat.FilterByPopulationRange(opts.minPopulation, opts.maxPopulation))
	}
	if cmd.Flags().Changed("min-area") {
		filters = append(filters, cat.FilterByAreaRange(opts.minArea, opts.maxArea))
	}

	for _, matched := range filters {
		results = intersect(results, matched)
	}
	return results, nil
}

// intersect keeps the elements of base that appear in matched, preserving
// base order. Names are unique within a catalog.
func intersect(base, matched []types.Country) []types.Country {
	keep := make(map[string]bool, len(matched))
	for _, c := range matched {
		keep[c.Name] = true
	}
	out := []types.Country{}
	for _, c := range base {
		if keep[c.Name] {
			out = append(out, c)
		}
	}
	return out
}
