package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

// SortMode selects a sorted view of the catalog.
type SortMode string

// Sort modes, in the order the menu offers them.
const (
	SortByName       SortMode = "name"
	SortByPopulation SortMode = "population"
	SortByAreaAsc    SortMode = "area-asc"
	SortByAreaDesc   SortMode = "area-desc"
)

// SortModes lists every valid mode.
var SortModes = []SortMode{SortByName, SortByPopulation, SortByAreaAsc, SortByAreaDesc}

// ParseSortMode converts a flag value to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	mode := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortModes, mode) {
		return mode, nil
	}
	return "", fmt.Errorf("%w %q (valid: name, population, area-asc, area-desc)", types.ErrUnknownSortMode, s)
}

// Sorted returns the catalog in the order mode selects.
func (c *Catalog) Sorted(mode SortMode) ([]types.Country, error) {
	switch mode {
	case SortByName:
		return c.SortedByName(), nil
	case SortByPopulation:
		return c.SortedByPopulation(), nil
	case SortByAreaAsc:
		return c.SortedByArea(true), nil
	case SortByAreaDesc:
		return c.SortedByArea(false), nil
	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnknownSortMode, string(mode))
	}
}

// SortedByName orders by the raw name, byte-wise ascending. Equal names keep
// catalog order.
func (c *Catalog) SortedByName() []types.Country {
	return c.sorted(func(a, b types.Country) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// SortedByPopulation orders by population ascending; ties keep catalog order.
func (c *Catalog) SortedByPopulation() []types.Country {
	return c.sorted(func(a, b types.Country) int {
		return cmp.Compare(a.Population, b.Population)
	})
}

// SortedByArea orders by area in the requested direction. Ties keep catalog
// order in both directions.
func (c *Catalog) SortedByArea(ascending bool) []types.Country {
	if ascending {
		return c.sorted(func(a, b types.Country) int {
			return cmp.Compare(a.Area, b.Area)
		})
	}
	return c.sorted(func(a, b types.Country) int {
		return cmp.Compare(b.Area, a.Area)
	})
}

func (c *Catalog) sorted(less func(a, b types.Country) int) []types.Country {
	out := slices.Clone(c.countries)
	slices.SortStableFunc(out, less)
	return out
}
