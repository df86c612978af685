package v1

import (
	"errors"
	"log/slog"

	"github.com/vmunix/streamdash/internal/catalog"
	"github.com/vmunix/streamdash/internal/dashboard"
	"github.com/vmunix/streamdash/internal/library"
)

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks . Dashboard,ImportLog

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Dashboard computes views over the loaded catalog.
// *dashboard.Engine satisfies it.
type Dashboard interface {
	Apply(sel dashboard.Selection) *dashboard.View
	Facets() dashboard.Facets
	Total() int
	Stats() catalog.Stats
}

// ImportLog reports the most recent SQLite cache import.
// *library.Store satisfies it.
type ImportLog interface {
	LastImport() (*library.Import, error)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	// Required
	Dashboard Dashboard

	// Optional (nil if the catalog was read straight from CSV)
	Imports ImportLog
	Logger  *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Dashboard == nil {
		return errors.New("dashboard is required")
	}
	return nil
}
