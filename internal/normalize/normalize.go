// Package normalize canonicalizes text for case- and accent-insensitive
// comparison of country names and continents.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops nonspacing combining marks, so "é"
// becomes "e". The result is left decomposed; it is only used for comparison.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize trims text, collapses internal whitespace runs to one space,
// lowercases it and strips diacritics. It is deterministic and never fails.
func Normalize(text string) string {
	s := strings.ToLower(strings.Join(strings.Fields(text), " "))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on malformed chains; keep the folded input.
		return s
	}
	return out
}

// Equal reports whether a and b normalize to the same string.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether the normalized substr occurs in the normalized s.
// An empty substr is contained in every string.
func Contains(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}
