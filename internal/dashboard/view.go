package dashboard

import (
	"fmt"

	"github.com/vmunix/streamdash/internal/catalog"
)

// NoData is the label shown in place of a top country or genre when the
// filtered subset is empty.
const NoData = "N/A"

// View is the result of applying a Selection to the dataset.
// It is never modified after Apply returns.
type View struct {
	Selection Selection
	Entries   []catalog.Entry

	TitleCountFiltered int
	TitleCountTotal    int

	CategoryPercentages map[string]float64
	CategoryShares      []Share
	TitlesByYear        []YearCount
	TopCountries        []Count
	TopGenres           []Count

	MovieSharePercent float64
	TVSharePercent    float64
}

// KPIs are the four headline values.
type KPIs struct {
	Filtered     int     `json:"titles_filtered"`
	Total        int     `json:"titles_total"`
	MoviePercent float64 `json:"movie_percent"`
	TVPercent    float64 `json:"tv_percent"`
}

// KPIs returns the headline values with percentages rounded to one decimal.
func (v *View) KPIs() KPIs {
	return KPIs{
		Filtered:     v.TitleCountFiltered,
		Total:        v.TitleCountTotal,
		MoviePercent: Round1(v.MovieSharePercent),
		TVPercent:    Round1(v.TVSharePercent),
	}
}

// TopCountry returns the most frequent country, or false when there is none.
func (v *View) TopCountry() (string, bool) {
	return first(v.TopCountries)
}

// TopGenre returns the most frequent genre, or false when there is none.
func (v *View) TopGenre() (string, bool) {
	return first(v.TopGenres)
}

func first(cs []Count) (string, bool) {
	if len(cs) == 0 {
		return "", false
	}
	return cs[0].Name, true
}

// CountryCounts returns the top countries as a map.
func (v *View) CountryCounts() map[string]int {
	return toMap(v.TopCountries)
}

// GenreCounts returns the top genres as a map.
func (v *View) GenreCounts() map[string]int {
	return toMap(v.TopGenres)
}

func toMap(cs []Count) map[string]int {
	m := make(map[string]int, len(cs))
	for _, c := range cs {
		m[c.Name] = c.Count
	}
	return m
}

// Insight summarizes the view in one sentence for display under the charts.
func (v *View) Insight() string {
	country, ok := v.TopCountry()
	if !ok {
		country = NoData
	}
	genre, ok := v.TopGenre()
	if !ok {
		genre = NoData
	}
	return fmt.Sprintf(
		"Most titles in this selection come from %s and the leading genre is %s. Movies make up %.1f%% of titles and TV shows %.1f%%.",
		country, genre, v.MovieSharePercent, v.TVSharePercent,
	)
}

// Summary is the chart-ready projection of a View without its entries.
// Percentages are rounded to one decimal.
type Summary struct {
	Selection      Selection   `json:"selection"`
	KPIs           KPIs        `json:"kpis"`
	CategoryShares []Share     `json:"category_shares"`
	TitlesByYear   []YearCount `json:"titles_by_year"`
	TopCountries   []Count     `json:"top_countries"`
	TopGenres      []Count     `json:"top_genres"`
	Insight        string      `json:"insight"`
}

// Summary returns the projection of v sent to API and JSON clients.
func (v *View) Summary() Summary {
	shares := make([]Share, len(v.CategoryShares))
	for i, s := range v.CategoryShares {
		shares[i] = Share{Category: s.Category, Percent: Round1(s.Percent)}
	}
	return Summary{
		Selection:      v.Selection,
		KPIs:           v.KPIs(),
		CategoryShares: shares,
		TitlesByYear:   v.TitlesByYear,
		TopCountries:   v.TopCountries,
		TopGenres:      v.TopGenres,
		Insight:        v.Insight(),
	}
}
