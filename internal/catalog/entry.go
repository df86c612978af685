// Package catalog normalizes raw streaming-catalog rows into canonical entries.
package catalog

import (
	"iter"
	"time"
)

// Canonical category values observed in the source data.
const (
	CategoryMovie  = "Movie"
	CategoryTVShow = "TV Show"
)

// Defaults substituted for missing values.
const (
	UnknownCategory = "Unknown"
	UnknownCountry  = "Unknown"
	UnratedRating   = "Unrated"
)

// Entry is one canonical catalog row.
// Entries are never modified after normalization.
type Entry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`

	// Type is the raw comma-joined genre field; Genres is its split form.
	Type   string   `json:"type"`
	Genres []string `json:"genres"`

	// Country is the raw comma-joined country field; Countries is its split form.
	Country   string   `json:"country"`
	Countries []string `json:"countries"`

	Rating      string     `json:"rating"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Year        *int       `json:"year,omitempty"` // non-nil iff ReleaseDate is non-nil

	Duration      string `json:"duration,omitempty"`
	DurationValue *int   `json:"duration_value,omitempty"`
	DurationUnit  string `json:"duration_unit,omitempty"` // "" when absent

	Director    string `json:"director,omitempty"`
	Cast        string `json:"cast,omitempty"`
	Description string `json:"description,omitempty"`

	// sourceID is the show_id as read, "" when ID was synthesized.
	sourceID  string
	defaulted defaults
}

// defaults records which fields normalization filled in.
type defaults uint8

const (
	defaultedCategory defaults = 1 << iota
	defaultedCountry
	defaultedRating
)

// YearOrZero returns the release year, or 0 when unknown.
func (e *Entry) YearOrZero() int {
	if e.Year == nil {
		return 0
	}
	return *e.Year
}

// Stats counts the defaults applied while normalizing.
type Stats struct {
	Rows                int
	SyntheticIDs        int
	DuplicateIDs        int
	DefaultedCategories int
	DefaultedCountries  int
	DefaultedRatings    int
	MissingDates        int
	MissingDurations    int
}

// Dataset is the immutable, normalized catalog. Create it with Normalize.
type Dataset struct {
	entries []Entry
	stats   Stats
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// At returns the i-th entry. Callers must not modify it.
func (d *Dataset) At(i int) *Entry {
	return &d.entries[i]
}

// All iterates over the entries in source order.
func (d *Dataset) All() iter.Seq2[int, *Entry] {
	return func(yield func(int, *Entry) bool) {
		if d == nil {
			return
		}
		for i := range d.entries {
			if !yield(i, &d.entries[i]) {
				return
			}
		}
	}
}

// Stats returns the normalization counters.
func (d *Dataset) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	return d.stats
}
