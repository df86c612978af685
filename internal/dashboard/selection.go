// Package dashboard filters the catalog by facet selection and computes the
// aggregates shown on the dashboard.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/vmunix/streamdash/internal/catalog"
)

// All is the facet value meaning "no constraint".
const All = "All"

// YearRange is an inclusive year interval.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year is within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Selection is the set of active facet filters.
// Empty strings and All disable a facet; a nil Years disables the year filter.
type Selection struct {
	Years    *YearRange `json:"years,omitempty"`
	Category string     `json:"category,omitempty"`
	Rating   string     `json:"rating,omitempty"`
	Country  string     `json:"country,omitempty"`
	Genre    string     `json:"genre,omitempty"`
}

// Between returns a copy of s constrained to [lo, hi].
func (s Selection) Between(lo, hi int) Selection {
	s.Years = &YearRange{Min: lo, Max: hi}
	return s
}

func active(v string) bool {
	return v != "" && v != All
}

// Matches reports whether e satisfies every active predicate.
func (s Selection) Matches(e *catalog.Entry) bool {
	if s.Years != nil && !s.Years.Contains(e.YearOrZero()) {
		return false
	}
	if active(s.Category) && e.Category != s.Category {
		return false
	}
	if active(s.Rating) && e.Rating != s.Rating {
		return false
	}
	// Substring match lets "India" select "United States, India".
	if active(s.Country) && !strings.Contains(e.Country, s.Country) {
		return false
	}
	if active(s.Genre) && !strings.Contains(e.Type, s.Genre) {
		return false
	}
	return true
}

// String renders the active filters, e.g. "years=2019-2020 country=India".
func (s Selection) String() string {
	var parts []string
	if s.Years != nil {
		parts = append(parts, fmt.Sprintf("years=%d-%d", s.Years.Min, s.Years.Max))
	}
	for _, f := range []struct{ name, value string }{
		{"category", s.Category},
		{"rating", s.Rating},
		{"country", s.Country},
		{"genre", s.Genre},
	} {
		if active(f.value) {
			parts = append(parts, fmt.Sprintf("%s=%s", f.name, f.value))
		}
	}
	if len(parts) == 0 {
		return All
	}
	return strings.Join(parts, " ")
}
