// Package nasapower fetches daily agro-meteorological observations from the
// NASA POWER point API.
package nasapower

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const parameters = "T2M_MAX,T2M_MIN,RH2M,WS2M,ALLSKY_SFC_SW_DWN,PRECTOTCORR"

// fillValue is what POWER reports for days it has not processed yet.
const fillValue = -999.0

// ErrNotAvailable means the API answered but has no data for the requested
// day yet (recent dates lag by a few days). Distinct from transport failures
// so callers can tell the user to wait rather than retry.
var ErrNotAvailable = errors.New("nasa power: data not yet available")

// Day is one day of raw meteorology. Radiation is MJ/m2/day, wind m/s at 2 m.
type Day struct {
	TempMax       float64
	TempMin       float64
	Humidity      float64
	WindSpeed     float64
	Radiation     float64
	Precipitation float64
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, httpc: &http.Client{Timeout: timeout}}
}

// FetchDay pulls a single day for a point. The AG community endpoint already
// delivers radiation in MJ/m2/day, so no unit conversion happens past this
// boundary.
func (c *Client) FetchDay(ctx context.Context, lat, lon float64, date time.Time) (*Day, error) {
	q := url.Values{}
	q.Set("parameters", parameters)
	q.Set("community", "AG")
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("start", date.Format("20060102"))
	q.Set("end", date.Format("20060102"))
	q.Set("format", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil { return nil, err }

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nasa power request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nasa power status %d", resp.StatusCode)
	}

	var out struct {
		Properties struct {
			Parameter map[string]map[string]float64 `json:"parameter"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("nasa power decode: %w", err)
	}

	key := date.Format("20060102")
	get := func(param string) (float64, bool) {
		vals, ok := out.Properties.Parameter[param]
		if !ok { return 0, false }
		v, ok := vals[key]
		if !ok || v == fillValue { return 0, false }
		return v, true
	}

	d := &Day{}
	fields := []struct {
		param string
		dst   *float64
	}{
		{"T2M_MAX", &d.TempMax},
		{"T2M_MIN", &d.TempMin},
		{"RH2M", &d.Humidity},
		{"WS2M", &d.WindSpeed},
		{"ALLSKY_SFC_SW_DWN", &d.Radiation},
		{"PRECTOTCORR", &d.Precipitation},
	}
	for _, f := range fields {
		v, ok := get(f.param)
		if !ok {
			return nil, fmt.Errorf("%w: %s on %s", ErrNotAvailable, f.param, date.Format("2006-01-02"))
		}
		*f.dst = v
	}
	return d, nil
}
