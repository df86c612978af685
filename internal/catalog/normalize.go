package catalog

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// RawRow is one source row keyed by normalized column name.
// A missing key and an empty value both mean "absent".
type RawRow map[string]string

// Column names after NormalizeColumn.
const (
	ColID          = "show_id"
	ColCategory    = "category"
	ColTitle       = "title"
	ColDirector    = "director"
	ColCast        = "cast"
	ColCountry     = "country"
	ColReleaseDate = "release_date"
	ColRating      = "rating"
	ColDuration    = "duration"
	ColType        = "type"
	ColDescription = "description"
)

var columnFolder = cases.Fold()

// NormalizeColumn trims, case-folds and replaces spaces with underscores,
// so "Release Date " and "release_date" name the same column.
func NormalizeColumn(name string) string {
	s := strings.TrimSpace(name)
	s = columnFolder.String(s)
	return strings.ReplaceAll(s, " ", "_")
}

// dateLayouts are tried in order. The source uses "September 25, 2021".
var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"January 2006",
	"2006",
}

// ParseDate parses a release date. ok is false for anything unparseable.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var (
	digitsRegex  = regexp.MustCompile(`\d+`)
	lettersRegex = regexp.MustCompile(`[A-Za-z]+`)
)

// ParseDuration extracts the first run of digits and the first run of
// letters from free text such as "90 min" or "2 Seasons". A digit run too
// large for an int is clamped to math.MaxInt.
func ParseDuration(s string) (value *int, unit string) {
	if d := digitsRegex.FindString(s); d != "" {
		n, err := strconv.Atoi(d)
		if errors.Is(err, strconv.ErrRange) {
			n, err = math.MaxInt, nil
		}
		if err == nil {
			value = &n
		}
	}
	unit = lettersRegex.FindString(s)
	return value, unit
}

// SplitMulti splits a comma-joined field into trimmed, non-empty parts.
func SplitMulti(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// clean trims and NFC-normalizes a cell.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Normalize converts raw rows into a Dataset. It never fails: invalid values
// become absent or take a default, and no row is dropped. IDs are unique
// across the dataset; a repeated ID gets the lowest free "-N" suffix.
func Normalize(rows []RawRow) *Dataset {
	ds := &Dataset{entries: make([]Entry, 0, len(rows))}
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		e := normalizeRow(i, row, &ds.stats)
		if id, renamed := uniqueID(e.ID, seen); renamed {
			e.ID = id
			ds.stats.DuplicateIDs++
		}
		ds.entries = append(ds.entries, e)
	}
	ds.stats.Rows = len(rows)
	return ds
}

// uniqueID claims id in seen, or the first free id-2, id-3, ... if taken.
func uniqueID(id string, seen map[string]struct{}) (string, bool) {
	if _, taken := seen[id]; !taken {
		seen[id] = struct{}{}
		return id, false
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := seen[candidate]; !taken {
			seen[candidate] = struct{}{}
			return candidate, true
		}
	}
}

func normalizeRow(i int, row RawRow, st *Stats) Entry {
	get := func(col string) string { return clean(row[col]) }

	e := Entry{
		ID:          get(ColID),
		Title:       get(ColTitle),
		Category:    get(ColCategory),
		Type:        get(ColType),
		Country:     get(ColCountry),
		Rating:      get(ColRating),
		Duration:    get(ColDuration),
		Director:    get(ColDirector),
		Cast:        get(ColCast),
		Description: get(ColDescription),
	}

	e.sourceID = e.ID
	if e.ID == "" {
		e.ID = fmt.Sprintf("row-%d", i+1)
		st.SyntheticIDs++
	}
	if e.Category == "" {
		e.Category = UnknownCategory
		e.defaulted |= defaultedCategory
		st.DefaultedCategories++
	}
	if e.Country == "" {
		e.Country = UnknownCountry
		e.defaulted |= defaultedCountry
		st.DefaultedCountries++
	}
	if e.Rating == "" {
		e.Rating = UnratedRating
		e.defaulted |= defaultedRating
		st.DefaultedRatings++
	}

	e.Genres = SplitMulti(e.Type)
	e.Countries = SplitMulti(e.Country)

	if t, ok := ParseDate(get(ColReleaseDate)); ok {
		year := t.Year()
		e.ReleaseDate = &t
		e.Year = &year
	} else {
		st.MissingDates++
	}

	e.DurationValue, e.DurationUnit = ParseDuration(e.Duration)
	if e.DurationValue == nil && e.DurationUnit == "" {
		st.MissingDurations++
	}

	return e
}

// Raw converts an entry back to the source row in canonical form. Defaulted
// fields and synthetic IDs come back empty, so normalizing the Raw rows of a
// dataset in order reproduces both its entries and its Stats.
func (e *Entry) Raw() RawRow {
	row := RawRow{
		ColID:          e.sourceID,
		ColTitle:       e.Title,
		ColCategory:    e.source(defaultedCategory, e.Category),
		ColType:        e.Type,
		ColCountry:     e.source(defaultedCountry, e.Country),
		ColRating:      e.source(defaultedRating, e.Rating),
		ColDuration:    e.Duration,
		ColDirector:    e.Director,
		ColCast:        e.Cast,
		ColDescription: e.Description,
	}
	if e.ReleaseDate != nil {
		row[ColReleaseDate] = e.ReleaseDate.Format("2006-01-02")
	}
	return row
}

func (e *Entry) source(d defaults, v string) string {
	if e.defaulted&d != 0 {
		return ""
	}
	return v
}
