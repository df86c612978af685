// internal/library/testutil_test.go
package library

import (
	"database/sql"
	"testing"

	"github.com/vmunix/streamdash/internal/catalog"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testDataset() *catalog.Dataset {
	return catalog.Normalize([]catalog.RawRow{
		{
			catalog.ColID:          "s1",
			catalog.ColCategory:    "Movie",
			catalog.ColTitle:       "Dick Johnson Is Dead",
			catalog.ColCountry:     "United States",
			catalog.ColReleaseDate: "September 25, 2021",
			catalog.ColRating:      "PG-13",
			catalog.ColDuration:    "90 min",
			catalog.ColType:        "Documentaries",
		},
		{
			catalog.ColID:       "s2",
			catalog.ColCategory: "TV Show",
			catalog.ColTitle:    "Blood & Water",
			catalog.ColCountry:  "South Africa, India",
			catalog.ColDuration: "2 Seasons",
			catalog.ColType:     "International TV Shows, TV Dramas",
			catalog.ColCast:     "Ama Qamata, Khosi Ngema",
		},
		{},
	})
}
