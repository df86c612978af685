package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vmunix/streamdash/internal/dashboard"
)

// selectionFlags are the facet filters shared by view and titles.
type selectionFlags struct {
	yearMin  int
	yearMax  int
	category string
	rating   string
	country  string
	genre    string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.yearMin, "year-min", 0, "Earliest release year (inclusive)")
	cmd.Flags().IntVar(&f.yearMax, "year-max", 0, "Latest release year (inclusive)")
	cmd.Flags().StringVar(&f.category, "category", dashboard.All, "Movie, TV Show or All")
	cmd.Flags().StringVar(&f.rating, "rating", dashboard.All, "Exact rating, e.g. TV-MA")
	cmd.Flags().StringVar(&f.country, "country", dashboard.All, "Country (matches multi-country titles)")
	cmd.Flags().StringVar(&f.genre, "genre", dashboard.All, "Genre (matches multi-genre titles)")
}

// selection builds the Selection. A year bound that was not given is taken
// from the dataset's year bounds.
func (f *selectionFlags) selection(facets dashboard.Facets) (dashboard.Selection, error) {
	sel := dashboard.Selection{
		Category: f.category,
		Rating:   f.rating,
		Country:  f.country,
		Genre:    f.genre,
	}
	if f.yearMin == 0 && f.yearMax == 0 {
		return sel, nil
	}

	lo, hi := f.yearMin, f.yearMax
	if lo == 0 {
		lo = min(facets.YearMin, hi)
	}
	if hi == 0 {
		hi = max(facets.YearMax, lo)
	}
	if hi < lo {
		return sel, fmt.Errorf("--year-max %d is before --year-min %d", hi, lo)
	}
	return sel.Between(lo, hi), nil
}

// warnSuggestions prints a "did you mean" hint for every facet value that is
// not an option.
func warnSuggestions(w io.Writer, facets dashboard.Facets, sel dashboard.Selection) {
	sugg := facets.Suggestions(sel)
	names := make([]string, 0, len(sugg))
	for facet := range sugg {
		names = append(names, string(facet))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "No %s matches exactly; did you mean %q?\n", name, sugg[dashboard.Facet(name)])
	}
}
