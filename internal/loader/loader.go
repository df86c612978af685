// Package loader opens the catalog from the source named in the config.
package loader

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/streamdash/internal/catalog"
	"github.com/vmunix/streamdash/internal/config"
	"github.com/vmunix/streamdash/internal/library"
)

// ErrUnknownSource is returned for a dataset source other than csv or sqlite.
var ErrUnknownSource = errors.New("unknown dataset source")

// Catalog is a loaded dataset plus the cache it came from, if any.
type Catalog struct {
	Dataset *catalog.Dataset
	Source  string

	// Store is set only for the sqlite source.
	Store *library.Store
	db    *sql.DB
}

// Close releases the SQLite cache, if one is open.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Load reads the dataset from CSV or from the SQLite cache.
func Load(cfg *config.Config, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "loader")

	var c *Catalog
	switch cfg.Dataset.Source {
	case config.SourceCSV, "":
		ds, err := catalog.LoadFile(cfg.Dataset.Path)
		if err != nil {
			return nil, fmt.Errorf("load dataset: %w", err)
		}
		c = &Catalog{Dataset: ds, Source: config.SourceCSV}

	case config.SourceSQLite:
		db, err := library.OpenDB(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		store := library.NewStore(db)
		ds, err := store.Load()
		if err != nil {
			_ = db.Close()
			if errors.Is(err, library.ErrEmpty) {
				return nil, fmt.Errorf("load cache %s: %w (run 'streamdash import' first)", cfg.Database.Path, err)
			}
			return nil, fmt.Errorf("load cache %s: %w", cfg.Database.Path, err)
		}
		c = &Catalog{Dataset: ds, Source: config.SourceSQLite, Store: store, db: db}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Dataset.Source)
	}

	Report(logger, c.Dataset.Stats())
	logger.Info("catalog loaded", "source", c.Source, "titles", c.Dataset.Len())
	return c, nil
}

// Report logs the defaults applied while normalizing. A defaulted category
// is a warning since it distorts the movie/TV split.
func Report(logger *slog.Logger, st catalog.Stats) {
	if st.DefaultedCategories > 0 {
		logger.Warn("rows without a category counted as "+catalog.UnknownCategory,
			"rows", st.DefaultedCategories)
	}
	if st.SyntheticIDs > 0 {
		logger.Warn("rows without show_id were given synthetic IDs", "rows", st.SyntheticIDs)
	}
	if st.DuplicateIDs > 0 {
		logger.Warn("repeated show_id values were given a numeric suffix", "rows", st.DuplicateIDs)
	}
	logger.Debug("normalization stats",
		"rows", st.Rows,
		"defaulted_countries", st.DefaultedCountries,
		"defaulted_ratings", st.DefaultedRatings,
		"missing_dates", st.MissingDates,
		"missing_durations", st.MissingDurations,
	)
}
