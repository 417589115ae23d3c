// README: USGS earthquake catalog client with city-name place filtering.
package hazard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// minMagnitude keeps the catalog query to events travellers would care about.
const minMagnitude = "4.5"

type quakeClient struct {
	baseURL string
	client  *http.Client
}

// fetchEvents queries the catalog for the date range and keeps only events
// whose free-text place mentions the city. Case-insensitive substring on
// purpose: it can over- and under-match gulf/region names, and that looseness
// is the documented behavior.
func (c *quakeClient) fetchEvents(ctx context.Context, city, startDate, endDate string) ([]Earthquake, error) {
	q := url.Values{}
	q.Set("format", "geojson")
	q.Set("starttime", startDate)
	q.Set("endtime", endDate)
	q.Set("minmagnitude", minMagnitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fdsnws/event/1/query?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Features []struct {
			Properties struct {
				Place string  `json:"place"`
				Mag   float64 `json:"mag"`
				Time  int64   `json:"time"` // epoch milliseconds
				URL   string  `json:"url"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	cityLower := strings.ToLower(city)
	var events []Earthquake
	for _, f := range payload.Features {
		p := f.Properties
		if !strings.Contains(strings.ToLower(p.Place), cityLower) {
			continue
		}
		events = append(events, Earthquake{
			Place:     p.Place,
			Magnitude: p.Mag,
			Time:      time.UnixMilli(p.Time).UTC().Format("2006-01-02 15:04:05"),
			URL:       p.URL,
		})
	}
	return events, nil
}
