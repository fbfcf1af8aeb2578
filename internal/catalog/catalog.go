// Package catalog holds the in-memory country catalog and every operation on
// it: add, update, search, filters, sorted views and statistics.
//
// The catalog is the single authority for the running process. Each
// successful mutation is written through to the Store as a full snapshot;
// a mutation whose save fails is rolled back so memory and storage never
// diverge.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/atlas/internal/normalize"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// Catalog is an ordered collection of countries backed by a Store.
// Insertion order is preserved; sorted views never reorder the catalog.
type Catalog struct {
	store     types.Store
	countries []types.Country
	log       zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Catalog) {
		c.log = log
	}
}

// Open loads the snapshot from store and returns a catalog over it. A load
// failure is returned unchanged; callers treat it as fatal at startup.
func Open(store types.Store, opts ...Option) (*Catalog, error) {
	countries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	c := New(store, countries, opts...)
	ev := c.log.Info().Int("countries", len(countries))
	if r, ok := store.(types.LoadReporter); ok {
		ev = ev.Int("dropped", r.Dropped())
	}
	ev.Msg("catalog loaded")
	return c, nil
}

// New returns a catalog holding a copy of countries without loading from
// store. Records are trusted as-is.
func New(store types.Store, countries []types.Country, opts ...Option) *Catalog {
	c := &Catalog{
		store:     store,
		countries: slices.Clone(countries),
		log:       zerolog.Nop(),
	}
	if c.countries == nil {
		c.countries = []types.Country{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of countries.
func (c *Catalog) Len() int {
	return len(c.countries)
}

// All returns a copy of every country in catalog order.
func (c *Catalog) All() []types.Country {
	return slices.Clone(c.countries)
}

// Add validates a new country, rejects names that normalize to an existing
// name, appends it and persists the catalog. Name and continent are stored
// trimmed. Nothing changes if any step fails.
func (c *Catalog) Add(name string, population, area int64, continent string) error {
	country := types.Country{
		Name:       strings.TrimSpace(name),
		Population: population,
		Area:       area,
		Continent:  strings.TrimSpace(continent),
	}
	if err := country.Validate(); err != nil {
		return err
	}

	for _, existing := range c.countries {
		if normalize.Equal(existing.Name, country.Name) {
			return &types.DuplicateError{Name: country.Name, Existing: existing.Name}
		}
	}

	c.countries = append(c.countries, country)
	if err := c.persist(); err != nil {
		c.countries = c.countries[:len(c.countries)-1]
		return err
	}

	c.log.Debug().Str("country", country.Name).Int("countries", len(c.countries)).Msg("country added")
	return nil
}

// AddRaw parses population and area from text, as typed at the menu, and
// calls Add. Only plain base-10 digits are accepted.
func (c *Catalog) AddRaw(name, population, area, continent string) error {
	pop, err := types.ParseCount(types.FieldPopulation, strings.TrimSpace(population))
	if err != nil {
		return err
	}
	ar, err := types.ParseCount(types.FieldArea, strings.TrimSpace(area))
	if err != nil {
		return err
	}
	return c.Add(name, pop, ar, continent)
}

// Update sets population and area on the first country, in catalog order,
// whose name matches nameQuery as Search does. The earliest inserted match
// wins when several names contain the query.
func (c *Catalog) Update(nameQuery string, population, area int64) error {
	i, err := c.resolve(nameQuery)
	if err != nil {
		return err
	}
	return c.apply(i, population, area)
}

// UpdateRaw is Update with population and area parsed from text. The target
// is resolved before the numbers are checked.
func (c *Catalog) UpdateRaw(nameQuery, population, area string) error {
	i, err := c.resolve(nameQuery)
	if err != nil {
		return err
	}
	pop, err := types.ParseCount(types.FieldPopulation, strings.TrimSpace(population))
	if err != nil {
		return err
	}
	ar, err := types.ParseCount(types.FieldArea, strings.TrimSpace(area))
	if err != nil {
		return err
	}
	return c.apply(i, pop, ar)
}

// Resolve returns the country Update would modify for nameQuery.
func (c *Catalog) Resolve(nameQuery string) (types.Country, error) {
	i, err := c.resolve(nameQuery)
	if err != nil {
		return types.Country{}, err
	}
	return c.countries[i], nil
}

func (c *Catalog) resolve(nameQuery string) (int, error) {
	for i, country := range c.countries {
		if normalize.Contains(country.Name, nameQuery) {
			return i, nil
		}
	}
	return -1, &types.NotFoundError{Query: nameQuery}
}

func (c *Catalog) apply(i int, population, area int64) error {
	if population < 0 {
		return types.NewValidationError(types.FieldPopulation, population, "must be a non-negative integer")
	}
	if area < 0 {
		return types.NewValidationError(types.FieldArea, area, "must be a non-negative integer")
	}

	prev := c.countries[i]
	c.countries[i].Population = population
	c.countries[i].Area = area
	if err := c.persist(); err != nil {
		c.countries[i] = prev
		return err
	}

	c.log.Debug().Str("country", prev.Name).Int64("population", population).Int64("area", area).Msg("country updated")
	return nil
}

// persist writes the full catalog through the store.
func (c *Catalog) persist() error {
	if err := c.store.Save(c.countries); err != nil {
		c.log.Error().Err(err).Msg("save catalog")
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
