package dashboard

import (
	"slices"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/streamdash/internal/catalog"
)

// Year bounds used when no entry has a release year.
const (
	FallbackYearMin = 2000
	FallbackYearMax = 2025
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.8

// Facet names a filterable dimension.
type Facet string

const (
	FacetCategory Facet = "category"
	FacetRating   Facet = "rating"
	FacetCountry  Facet = "country"
	FacetGenre    Facet = "genre"
)

// Facets lists the selectable values of each facet. Every list starts with All.
type Facets struct {
	Categories []string `json:"categories"`
	Ratings    []string `json:"ratings"`
	Countries  []string `json:"countries"`
	Genres     []string `json:"genres"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
}

// BuildFacets collects the distinct facet values of ds.
// Countries and genres are exploded from their multi-valued fields.
func BuildFacets(ds *catalog.Dataset) Facets {
	categories := make(map[string]struct{})
	ratings := make(map[string]struct{})
	countries := make(map[string]struct{})
	genres := make(map[string]struct{})
	minYear, maxYear, sawYear := 0, 0, false

	for _, e := range ds.All() {
		if e.Category != catalog.UnknownCategory {
			categories[e.Category] = struct{}{}
		}
		ratings[e.Rating] = struct{}{}
		for _, c := range e.Countries {
			countries[c] = struct{}{}
		}
		for _, g := range e.Genres {
			genres[g] = struct{}{}
		}
		if e.Year != nil {
			y := *e.Year
			if !sawYear || y < minYear {
				minYear = y
			}
			if !sawYear || y > maxYear {
				maxYear = y
			}
			sawYear = true
		}
	}

	if !sawYear {
		minYear, maxYear = FallbackYearMin, FallbackYearMax
	}

	return Facets{
		Categories: optionList(categories),
		Ratings:    optionList(ratings),
		Countries:  optionList(countries),
		Genres:     optionList(genres),
		YearMin:    minYear,
		YearMax:    maxYear,
	}
}

func optionList(set map[string]struct{}) []string {
	out := make([]string, 0, len(set)+1)
	for v := range set {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return append([]string{All}, out...)
}

// Values returns the option list for f, or nil for an unknown facet.
func (f Facets) Values(facet Facet) []string {
	switch facet {
	case FacetCategory:
		return f.Categories
	case FacetRating:
		return f.Ratings
	case FacetCountry:
		return f.Countries
	case FacetGenre:
		return f.Genres
	}
	return nil
}

// Has reports whether value is an option of facet.
func (f Facets) Has(facet Facet, value string) bool {
	return slices.Contains(f.Values(facet), value)
}

// Suggest returns the closest option to value by Jaro-Winkler similarity.
// It returns false when value is already an option or nothing is close.
func (f Facets) Suggest(facet Facet, value string) (string, bool) {
	if value == "" || f.Has(facet, value) {
		return "", false
	}
	best, bestScore := "", float32(0)
	for _, opt := range f.Values(facet) {
		if opt == All {
			continue
		}
		score := edlib.JaroWinklerSimilarity(value, opt)
		if score > bestScore {
			best, bestScore = opt, score
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}

// Suggestions returns a suggestion for every facet of sel whose value is
// not an option, keyed by facet name.
func (f Facets) Suggestions(sel Selection) map[Facet]string {
	out := make(map[Facet]string)
	for facet, value := range map[Facet]string{
		FacetCategory: sel.Category,
		FacetRating:   sel.Rating,
		FacetCountry:  sel.Country,
		FacetGenre:    sel.Genre,
	} {
		if !active(value) {
			continue
		}
		if s, ok := f.Suggest(facet, value); ok {
			out[facet] = s
		}
	}
	return out
}
