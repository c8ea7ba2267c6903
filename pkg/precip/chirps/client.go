// Package chirps reads daily rainfall for a point from a CHIRPS extraction
// endpoint (satellite-derived precipitation, ~5 km grid).
package chirps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNotAvailable means the grid has no value for the requested day yet.
var ErrNotAvailable = errors.New("chirps: data not yet available")

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, httpc: &http.Client{Timeout: timeout}}
}

// FetchDay returns gross precipitation in mm for a point and day.
func (c *Client) FetchDay(ctx context.Context, lat, lon float64, date time.Time) (float64, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("date", date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil { return 0, err }

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("chirps request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %s", ErrNotAvailable, date.Format("2006-01-02"))
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("chirps status %d", resp.StatusCode)
	}

	var out struct {
		Precipitation *float64 `json:"precipitation_mm"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("chirps decode: %w", err)
	}
	if out.Precipitation == nil {
		return 0, fmt.Errorf("%w: %s", ErrNotAvailable, date.Format("2006-01-02"))
	}
	return *out.Precipitation, nil
}
