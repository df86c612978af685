// Package v1 implements the dashboard REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/vmunix/streamdash/internal/library"
)

// Config holds API server configuration.
type Config struct {
	Source      string   // "csv" or "sqlite", reported by /status
	CORSOrigins []string // empty disables CORS headers
}

// Server is the v1 API server.
type Server struct {
	deps     ServerDeps
	cfg      Config
	log      *slog.Logger
	validate *validator.Validate
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		deps:     deps,
		cfg:      cfg,
		log:      log.With("component", "api"),
		validate: newValidator(),
	}, nil
}

// Handler returns the router with middleware and all API routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logRequests(s.log))
	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(allowOrigins(s.cfg.CORSOrigins))
	}
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers API routes on the given router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/view", s.getView)
		r.Get("/facets", s.getFacets)
		r.Get("/titles", s.listTitles)
		r.Get("/status", s.getStatus)
	})
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

// writeQueryError writes a 400 for a bad query string.
func writeQueryError(w http.ResponseWriter, err error) {
	var qerr *queryError
	if errors.As(err, &qerr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  qerr.msg,
			Code:   "INVALID_QUERY",
			Fields: qerr.fields,
		})
		return
	}
	writeError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) getView(w http.ResponseWriter, r *http.Request) {
	sel, err := s.parseSelection(r)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	view := s.deps.Dashboard.Apply(sel)
	resp := viewResponse{Summary: view.Summary()}
	if sugg := s.deps.Dashboard.Facets().Suggestions(sel); len(sugg) > 0 {
		resp.Suggestions = sugg
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getFacets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Dashboard.Facets())
}

func (s *Server) listTitles(w http.ResponseWriter, r *http.Request) {
	sel, err := s.parseSelection(r)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	page, err := s.parsePage(r)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	view := s.deps.Dashboard.Apply(sel)
	total := len(view.Entries)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	resp := listTitlesResponse{
		Items:  make([]entryResponse, 0, end-start),
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for i := start; i < end; i++ {
		resp.Items = append(resp.Items, entryToResponse(&view.Entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getStatus(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{
		Status: "ok",
		Source: s.cfg.Source,
		Titles: s.deps.Dashboard.Total(),
		Stats:  statsToResponse(s.deps.Dashboard.Stats()),
	}

	if s.deps.Imports != nil {
		imp, err := s.deps.Imports.LastImport()
		switch {
		case err == nil:
			resp.LastImport = &importResponse{
				Source:     imp.Source,
				Rows:       imp.Rows,
				ImportedAt: imp.ImportedAt,
			}
		case errors.Is(err, library.ErrNotFound):
			// never imported
		default:
			writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
