package main

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Status(t *testing.T) {
	srv := mockServer(t, "/api/v1/status", http.StatusOK, map[string]any{
		"status": "ok",
		"source": "sqlite",
		"titles": 8807,
		"stats":  map[string]int{"defaulted_categories": 2, "missing_dates": 10},
		"last_import": map[string]any{
			"source":      "catalog.csv",
			"rows":        8807,
			"imported_at": time.Now().Add(-2 * time.Hour),
		},
	})

	status, err := NewClient(srv.URL).Status()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Source)
	assert.Equal(t, 8807, status.Titles)
	assert.Equal(t, 2, status.Stats.DefaultedCategories)
	require.NotNil(t, status.LastImport)
	assert.Equal(t, "catalog.csv", status.LastImport.Source)
}

func TestClient_Status_ServerError(t *testing.T) {
	srv := mockServer(t, "/api/v1/status", http.StatusInternalServerError,
		map[string]string{"error": "disk I/O error", "code": "DB_ERROR"})

	_, err := NewClient(srv.URL).Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error 500")
	assert.Contains(t, err.Error(), "DB_ERROR")
}

func TestPrintStatusHuman(t *testing.T) {
	s := &StatusResponse{Status: "ok", Source: "csv", Titles: 8807}
	s.Stats.DefaultedCategories = 1234

	var buf bytes.Buffer
	printStatusHuman(&buf, "http://localhost:8585", s)

	out := buf.String()
	assert.Contains(t, out, "Server:     http://localhost:8585 (ok)")
	assert.Contains(t, out, "Titles:     8,807")
	assert.Contains(t, out, "No category: 1,234")
	assert.NotContains(t, out, "Imported:")
}

func TestStatusCmd(t *testing.T) {
	srv := mockServer(t, "/api/v1/status", http.StatusOK, map[string]any{"status": "ok", "source": "csv", "titles": 3})

	out, _, err := runCLI(t, "--server", srv.URL, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Titles:     3")
}
