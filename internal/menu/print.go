package menu

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

// PrintCountries writes one line per country.
func PrintCountries(w io.Writer, countries []types.Country) {
	for _, c := range countries {
		fmt.Fprintln(w, c.String())
	}
}

// PrintStats writes the statistics summary. Continents are listed in
// lexical order.
func PrintStats(w io.Writer, stats types.Stats) {
	fmt.Fprintf(w, "Most populous: %s\n", stats.MostPopulous)
	fmt.Fprintf(w, "Least populous: %s\n", stats.LeastPopulous)
	fmt.Fprintf(w, "Mean population: %.2f\n", stats.MeanPopulation)
	fmt.Fprintf(w, "Mean area: %.2f\n", stats.MeanArea)
	fmt.Fprintln(w, "Countries per continent:")
	for _, continent := range slices.Sorted(maps.Keys(stats.ContinentCounts)) {
		fmt.Fprintf(w, "  %s: %d\n", continent, stats.ContinentCounts[continent])
	}
}
