package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Country is one catalog record.
type Country struct {
	Name       string `json:"name" yaml:"name"`             // Display name (required, unique under normalization).
	Population int64  `json:"population" yaml:"population"` // Inhabitants (non-negative).
	Area       int64  `json:"area" yaml:"area"`             // Surface in square kilometres (non-negative).
	Continent  string `json:"continent" yaml:"continent"`   // Free-form continent label (required).
}

// Field names used in validation errors and as the snapshot header.
const (
	FieldName       = "name"
	FieldPopulation = "population"
	FieldArea       = "area"
	FieldContinent  = "continent"
)

// Header is the fixed column order of a persisted snapshot.
var Header = []string{FieldName, FieldPopulation, FieldArea, FieldContinent}

// Validate checks the record invariants. Name and continent must be non-empty
// after trimming; population and area must be non-negative. The first failing
// field is reported as a *ValidationError.
func (c Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError(FieldName, c.Name, "must not be empty")
	}
	if c.Population < 0 {
		return NewValidationError(FieldPopulation, c.Population, "must be a non-negative integer")
	}
	if c.Area < 0 {
		return NewValidationError(FieldArea, c.Area, "must be a non-negative integer")
	}
	if strings.TrimSpace(c.Continent) == "" {
		return NewValidationError(FieldContinent, c.Continent, "must not be empty")
	}
	return nil
}

// String renders the record on one line for menu output.
func (c Country) String() string {
	return fmt.Sprintf("%s | population: %d | area: %d | continent: %s",
		c.Name, c.Population, c.Area, c.Continent)
}

// ParseCount parses a non-negative base-10 integer made only of ASCII digits.
// Signs, spaces and separators are rejected with a *ValidationError for field.
func ParseCount(field, s string) (int64, error) {
	if s == "" {
		return 0, NewValidationError(field, s, "must be a non-negative integer")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, NewValidationError(field, s, "must be a non-negative integer")
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError(field, s, "is out of range")
	}
	return n, nil
}
