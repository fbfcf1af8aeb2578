package catalog

import (
	"github.com/mesh-intelligence/atlas/internal/normalize"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// Search returns every country whose normalized name contains the normalized
// query, in catalog order. An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []types.Country {
	return c.filter(func(country types.Country) bool {
		return normalize.Contains(country.Name, query)
	})
}

// FilterByContinent returns countries whose continent equals query after
// normalization. Partial continent names do not match.
func (c *Catalog) FilterByContinent(query string) []types.Country {
	return c.filter(func(country types.Country) bool {
		return normalize.Equal(country.Continent, query)
	})
}

// FilterByPopulationRange returns countries with lo <= population <= hi.
// An inverted range matches nothing.
func (c *Catalog) FilterByPopulationRange(lo, hi int64) []types.Country {
	return c.filter(func(country types.Country) bool {
		return lo <= country.Population && country.Population <= hi
	})
}

// FilterByAreaRange returns countries with lo <= area <= hi. An inverted
// range matches nothing.
func (c *Catalog) FilterByAreaRange(lo, hi int64) []types.Country {
	return c.filter(func(country types.Country) bool {
		return lo <= country.Area && country.Area <= hi
	})
}

func (c *Catalog) filter(keep func(types.Country) bool) []types.Country {
	out := []types.Country{}
	for _, country := range c.countries {
		if keep(country) {
			out = append(out, country)
		}
	}
	return out
}
