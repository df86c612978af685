package dashboard

import (
	"slices"

	"github.com/vmunix/streamdash/internal/catalog"
)

// DefaultTopN is the length of the country and genre breakdowns.
const DefaultTopN = 10

type options struct {
	topN int
}

// Option configures Apply and Engine.
type Option func(*options)

// WithTopN sets the length of the top country and genre lists.
// Values below 1 keep the default.
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{topN: DefaultTopN}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Apply filters ds by sel and computes the aggregates for the result.
// It reads ds only and returns a fresh View on every call.
func Apply(ds *catalog.Dataset, sel Selection, opts ...Option) *View {
	o := buildOptions(opts)

	v := &View{
		Selection:       sel,
		TitleCountTotal: ds.Len(),
	}

	categories := newCounter()
	countries := newCounter()
	genres := newCounter()
	years := make(map[int]int)

	for _, e := range ds.All() {
		if !sel.Matches(e) {
			continue
		}
		v.Entries = append(v.Entries, *e)
		categories.add(e.Category)
		countries.addAll(e.Countries)
		genres.addAll(e.Genres)
		if e.Year != nil {
			years[*e.Year]++
		}
	}
	v.TitleCountFiltered = len(v.Entries)

	v.CategoryPercentages = percentages(categories, v.TitleCountFiltered)
	v.CategoryShares = make([]Share, 0, len(categories.order))
	for _, c := range categories.sorted() {
		v.CategoryShares = append(v.CategoryShares, Share{
			Category: c.Name,
			Percent:  v.CategoryPercentages[c.Name],
		})
	}
	v.MovieSharePercent = v.CategoryPercentages[catalog.CategoryMovie]
	v.TVSharePercent = v.CategoryPercentages[catalog.CategoryTVShow]

	v.TitlesByYear = make([]YearCount, 0, len(years))
	for y, n := range years {
		v.TitlesByYear = append(v.TitlesByYear, YearCount{Year: y, Count: n})
	}
	slices.SortFunc(v.TitlesByYear, func(a, b YearCount) int { return a.Year - b.Year })

	v.TopCountries = countries.top(o.topN)
	v.TopGenres = genres.top(o.topN)
	return v
}

// Engine binds a loaded dataset to the aggregation options so callers can
// recompute the view on each selection change.
type Engine struct {
	ds     *catalog.Dataset
	opts   []Option
	facets Facets
}

// NewEngine creates an engine over ds. Facets are computed once here.
func NewEngine(ds *catalog.Dataset, opts ...Option) *Engine {
	return &Engine{
		ds:     ds,
		opts:   opts,
		facets: BuildFacets(ds),
	}
}

// Apply computes the view for sel.
func (e *Engine) Apply(sel Selection) *View {
	return Apply(e.ds, sel, e.opts...)
}

// Facets returns the selectable facet values.
func (e *Engine) Facets() Facets {
	return e.facets
}

// Total returns the unfiltered dataset size.
func (e *Engine) Total() int {
	return e.ds.Len()
}

// Stats returns the dataset's normalization counters.
func (e *Engine) Stats() catalog.Stats {
	return e.ds.Stats()
}
