// Package menu runs the numbered text menu over a catalog. Each option maps
// to one catalog operation; every error is reported and the loop continues.
package menu

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/atlas/internal/catalog"
	"github.com/mesh-intelligence/atlas/pkg/types"
)

// item is one numbered entry of the main menu.
type item struct {
	key    string
	label  string
	action func() error
}

// sortItem is one lettered entry of the sort sub-menu.
type sortItem struct {
	key   string
	label string
	mode  catalog.SortMode
}

var sortItems = []sortItem{
	{key: "a", label: "Name", mode: catalog.SortByName},
	{key: "b", label: "Population", mode: catalog.SortByPopulation},
	{key: "c", label: "Area ascending", mode: catalog.SortByAreaAsc},
	{key: "d", label: "Area descending", mode: catalog.SortByAreaDesc},
}

// errExit ends the loop from the exit option.
var errExit = errors.New("exit")

// Menu drives a Catalog from line-based input.
type Menu struct {
	cat   *catalog.Catalog
	in    LineReader
	out   io.Writer
	log   zerolog.Logger
	items []item
}

// New returns a Menu reading from in and printing to out.
func New(cat *catalog.Catalog, in LineReader, out io.Writer, log zerolog.Logger) *Menu {
	m := &Menu{cat: cat, in: in, out: out, log: log}
	m.items = []item{
		{key: "1", label: "Add country", action: m.add},
		{key: "2", label: "Update country", action: m.update},
		{key: "3", label: "Search country by name", action: m.search},
		{key: "4", label: "Filter by continent", action: m.filterContinent},
		{key: "5", label: "Filter by population range", action: m.filterPopulation},
		{key: "6", label: "Filter by area range", action: m.filterArea},
		{key: "7", label: "Sort countries", action: m.sort},
		{key: "8", label: "Show statistics", action: m.statistics},
		{key: "9", label: "Show catalog", action: m.showAll},
		{key: "0", label: "Exit", action: func() error { return errExit }},
	}
	return m
}

// Run loops until the exit option or end of input. Catalog errors are printed
// and never end the loop; only a failure to read input is returned.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, err := m.in.Prompt("Option: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read option: %w", err)
		}

		choice = strings.TrimSpace(choice)
		idx := slices.IndexFunc(m.items, func(it item) bool { return it.key == choice })
		if idx < 0 {
			fmt.Fprintf(m.out, "Invalid option %q.\n", choice)
			continue
		}

		err = m.items[idx].action()
		switch {
		case errors.Is(err, errExit):
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		case err != nil:
			m.report(err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- MENU ---")
	for _, it := range m.items {
		fmt.Fprintf(m.out, "%s. %s\n", it.key, it.label)
	}
}

// report prints a user-facing message for err.
func (m *Menu) report(err error) {
	if errors.Is(err, types.ErrIO) {
		m.log.Error().Err(err).Msg("storage failure")
		fmt.Fprintf(m.out, "Error: could not save the catalog: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *Menu) add() error {
	name, err := m.in.Prompt("Country name: ")
	if err != nil {
		return err
	}
	population, err := m.in.Prompt("Population: ")
	if err != nil {
		return err
	}
	area, err := m.in.Prompt("Area: ")
	if err != nil {
		return err
	}
	continent, err := m.in.Prompt("Continent: ")
	if err != nil {
		return err
	}

	if err := m.cat.AddRaw(name, population, area, continent); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Country added.")
	return nil
}

func (m *Menu) update() error {
	query, err := m.in.Prompt("Country to update: ")
	if err != nil {
		return err
	}
	target, err := m.cat.Resolve(query)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Updating %s.\n", target.Name)

	population, err := m.in.Prompt("New population: ")
	if err != nil {
		return err
	}
	area, err := m.in.Prompt("New area: ")
	if err != nil {
		return err
	}

	if err := m.cat.UpdateRaw(query, population, area); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Country updated.")
	return nil
}

func (m *Menu) search() error {
	query, err := m.in.Prompt("Name: ")
	if err != nil {
		return err
	}
	results := m.cat.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(m.out, "No country matches %q.\n", strings.TrimSpace(query))
		return nil
	}
	m.printCountries(results)
	return nil
}

func (m *Menu) filterContinent() error {
	query, err := m.in.Prompt("Continent: ")
	if err != nil {
		return err
	}
	m.printResults(m.cat.FilterByContinent(query))
	return nil
}

func (m *Menu) filterPopulation() error {
	lo, hi, err := m.promptRange(types.FieldPopulation, "Minimum population: ", "Maximum population: ")
	if err != nil {
		return err
	}
	m.printResults(m.cat.FilterByPopulationRange(lo, hi))
	return nil
}

func (m *Menu) filterArea() error {
	lo, hi, err := m.promptRange(types.FieldArea, "Minimum area: ", "Maximum area: ")
	if err != nil {
		return err
	}
	m.printResults(m.cat.FilterByAreaRange(lo, hi))
	return nil
}

// promptRange reads two integer bounds. Bounds are not ordered or
// sign-checked; an inverted range simply matches nothing.
func (m *Menu) promptRange(field, minPrompt, maxPrompt string) (int64, int64, error) {
	var bounds [2]int64
	for i, prompt := range []string{minPrompt, maxPrompt} {
		text, err := m.in.Prompt(prompt)
		if err != nil {
			return 0, 0, err
		}
		text = strings.TrimSpace(text)
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, 0, types.NewValidationError(field, text, "must be an integer")
		}
		bounds[i] = n
	}
	return bounds[0], bounds[1], nil
}

func (m *Menu) sort() error {
	for _, si := range sortItems {
		fmt.Fprintf(m.out, "%s) %s\n", si.key, si.label)
	}
	choice, err := m.in.Prompt("Choose: ")
	if err != nil {
		return err
	}

	choice = strings.ToLower(strings.TrimSpace(choice))
	idx := slices.IndexFunc(sortItems, func(si sortItem) bool { return si.key == choice })
	if idx < 0 {
		fmt.Fprintf(m.out, "Invalid sort option %q.\n", choice)
		return nil
	}

	sorted, err := m.cat.Sorted(sortItems[idx].mode)
	if err != nil {
		return err
	}
	m.printResults(sorted)
	return nil
}

func (m *Menu) statistics() error {
	stats, err := m.cat.Statistics()
	if err != nil {
		return err
	}
	PrintStats(m.out, stats)
	return nil
}

func (m *Menu) showAll() error {
	all := m.cat.All()
	if len(all) == 0 {
		fmt.Fprintln(m.out, "The catalog is empty.")
		return nil
	}
	m.printCountries(all)
	return nil
}

func (m *Menu) printResults(countries []types.Country) {
	if len(countries) == 0 {
		fmt.Fprintln(m.out, "No countries found.")
		return
	}
	m.printCountries(countries)
}

func (m *Menu) printCountries(countries []types.Country) {
	PrintCountries(m.out, countries)
}
