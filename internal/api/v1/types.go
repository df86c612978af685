// internal/api/v1/types.go
package v1

import (
	"time"

	"github.com/vmunix/streamdash/internal/catalog"
	"github.com/vmunix/streamdash/internal/dashboard"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// viewResponse is the API representation of a dashboard view. Suggestions
// maps each facet whose value is not an option to the closest option.
type viewResponse struct {
	dashboard.Summary
	Suggestions map[dashboard.Facet]string `json:"suggestions,omitempty"`
}

// entryResponse is the API representation of a catalog entry.
type entryResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Genres      []string `json:"genres"`
	Countries   []string `json:"countries"`
	Rating      string   `json:"rating"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Director    string   `json:"director,omitempty"`
	Cast        string   `json:"cast,omitempty"`
	Description string   `json:"description,omitempty"`
}

// listTitlesResponse is the response for GET /titles.
type listTitlesResponse struct {
	Items  []entryResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// importResponse describes the last SQLite cache import.
type importResponse struct {
	Source     string    `json:"source"`
	Rows       int       `json:"rows"`
	ImportedAt time.Time `json:"imported_at"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status     string          `json:"status"`
	Source     string          `json:"source"`
	Titles     int             `json:"titles"`
	Stats      statsResponse   `json:"stats"`
	LastImport *importResponse `json:"last_import,omitempty"`
}

type statsResponse struct {
	SyntheticIDs        int `json:"synthetic_ids"`
	DuplicateIDs        int `json:"duplicate_ids"`
	DefaultedCategories int `json:"defaulted_categories"`
	DefaultedCountries  int `json:"defaulted_countries"`
	DefaultedRatings    int `json:"defaulted_ratings"`
	MissingDates        int `json:"missing_dates"`
	MissingDurations    int `json:"missing_durations"`
}

func entryToResponse(e *catalog.Entry) entryResponse {
	resp := entryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Category:    e.Category,
		Genres:      e.Genres,
		Countries:   e.Countries,
		Rating:      e.Rating,
		Year:        e.Year,
		Duration:    e.Duration,
		Director:    e.Director,
		Cast:        e.Cast,
		Description: e.Description,
	}
	if e.ReleaseDate != nil {
		resp.ReleaseDate = e.ReleaseDate.Format(time.DateOnly)
	}
	return resp
}

func statsToResponse(st catalog.Stats) statsResponse {
	return statsResponse{
		SyntheticIDs:        st.SyntheticIDs,
		DuplicateIDs:        st.DuplicateIDs,
		DefaultedCategories: st.DefaultedCategories,
		DefaultedCountries:  st.DefaultedCountries,
		DefaultedRatings:    st.DefaultedRatings,
		MissingDates:        st.MissingDates,
		MissingDurations:    st.MissingDurations,
	}
}
