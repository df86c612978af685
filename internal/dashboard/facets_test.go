package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/streamdash/internal/catalog"
)

func TestBuildFacets(t *testing.T) {
	ds := catalog.Normalize([]catalog.RawRow{
		{catalog.ColCategory: "TV Show", catalog.ColCountry: "India, United States", catalog.ColType: "TV Dramas", catalog.ColRating: "TV-MA", catalog.ColReleaseDate: "2021-01-01"},
		{catalog.ColCategory: "Movie", catalog.ColCountry: "India", catalog.ColType: "Dramas, Comedies", catalog.ColReleaseDate: "2008-01-01"},
		{catalog.ColCountry: "France"},
	})

	f := BuildFacets(ds)
	assert.Equal(t, []string{All, "Movie", "TV Show"}, f.Categories)
	assert.Equal(t, []string{All, "TV-MA", "Unrated"}, f.Ratings)
	assert.Equal(t, []string{All, "France", "India", "United States"}, f.Countries)
	assert.Equal(t, []string{All, "Comedies", "Dramas", "TV Dramas"}, f.Genres)
	assert.Equal(t, 2008, f.YearMin)
	assert.Equal(t, 2021, f.YearMax)
}

func TestBuildFacets_NoYears(t *testing.T) {
	f := BuildFacets(catalog.Normalize(nil))
	assert.Equal(t, FallbackYearMin, f.YearMin)
	assert.Equal(t, FallbackYearMax, f.YearMax)
	assert.Equal(t, []string{All}, f.Categories)
	assert.Equal(t, []string{All}, f.Countries)
}

func TestFacets_Suggest(t *testing.T) {
	f := Facets{
		Countries: []string{All, "India", "United Kingdom", "United States"},
		Genres:    []string{All, "Comedies", "Dramas"},
	}

	got, ok := f.Suggest(FacetCountry, "United Statse")
	assert.True(t, ok)
	assert.Equal(t, "United States", got)

	_, ok = f.Suggest(FacetCountry, "India")
	assert.False(t, ok, "exact options need no suggestion")

	_, ok = f.Suggest(FacetGenre, "zzzz")
	assert.False(t, ok, "nothing close")

	_, ok = f.Suggest(Facet("bogus"), "India")
	assert.False(t, ok)
}

func TestFacets_Suggestions(t *testing.T) {
	f := Facets{
		Categories: []string{All, "Movie", "TV Show"},
		Countries:  []string{All, "India"},
	}
	got := f.Suggestions(Selection{Category: "Movei", Country: "India", Genre: All})
	assert.Equal(t, map[Facet]string{FacetCategory: "Movie"}, got)
}
