package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP calls to the streamdash server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new streamdash API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// API response types (mirror server types)

type StatusResponse struct {
	Status string `json:"status"`
	Source string `json:"source"`
	Titles int    `json:"titles"`
	Stats  struct {
		SyntheticIDs        int `json:"synthetic_ids"`
		DuplicateIDs        int `json:"duplicate_ids"`
		DefaultedCategories int `json:"defaulted_categories"`
		DefaultedCountries  int `json:"defaulted_countries"`
		DefaultedRatings    int `json:"defaulted_ratings"`
		MissingDates        int `json:"missing_dates"`
		MissingDurations    int `json:"missing_durations"`
	} `json:"stats"`
	LastImport *struct {
		Source     string    `json:"source"`
		Rows       int       `json:"rows"`
		ImportedAt time.Time `json:"imported_at"`
	} `json:"last_import,omitempty"`
}

// Status fetches the server's dataset status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
