package catalog

import (
	"math/big"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

// Statistics summarizes the catalog. Ties for most and least populous go to
// the first such country in catalog order. Continent counts key on the raw
// continent text. Sums are exact, so means stay correct near the int64
// limits. An empty catalog returns types.ErrEmptyCatalog.
func (c *Catalog) Statistics() (types.Stats, error) {
	if len(c.countries) == 0 {
		return types.Stats{}, types.ErrEmptyCatalog
	}

	most, least := c.countries[0], c.countries[0]
	population, area := new(big.Int), new(big.Int)
	counts := make(map[string]int)
	for _, country := range c.countries {
		if country.Population > most.Population {
			most = country
		}
		if country.Population < least.Population {
			least = country
		}
		population.Add(population, big.NewInt(country.Population))
		area.Add(area, big.NewInt(country.Area))
		counts[country.Continent]++
	}

	n := len(c.countries)
	return types.Stats{
		MostPopulous:    most,
		LeastPopulous:   least,
		MeanPopulation:  mean(population, n),
		MeanArea:        mean(area, n),
		ContinentCounts: counts,
	}, nil
}

func mean(sum *big.Int, n int) float64 {
	q := new(big.Float).Quo(new(big.Float).SetInt(sum), big.NewFloat(float64(n)))
	f, _ := q.Float64()
	return f
}
