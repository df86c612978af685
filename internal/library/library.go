// Package library caches the normalized catalog in SQLite so the dashboard
// can start without re-reading the source CSV.
package library

import (
	"time"
)

// Import records one load of the catalog into the cache.
type Import struct {
	ID                  int64     `json:"id"`
	Source              string    `json:"source"`
	Rows                int       `json:"rows"`
	DefaultedCategories int       `json:"defaulted_categories"`
	MissingDates        int       `json:"missing_dates"`
	ImportedAt          time.Time `json:"imported_at"`
}
