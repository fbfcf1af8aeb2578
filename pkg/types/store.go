package types

// Store persists the whole catalog as a single snapshot.
type Store interface {
	// Load returns every valid record in stored order. A missing snapshot is
	// created empty. Rows that fail type coercion are dropped.
	Load() ([]Country, error)

	// Save replaces the snapshot with countries, in the order given.
	Save(countries []Country) error
}

// LoadReporter is implemented by stores that can report how many rows the
// last Load discarded.
type LoadReporter interface {
	Dropped() int
}
