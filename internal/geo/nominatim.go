// README: Nominatim (OpenStreetMap) geocoder, the default provider.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// NominatimGeocoder resolves place names via the public OpenStreetMap search
// endpoint. First candidate wins; no retry.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, place string) (Location, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrGeoService, err)
	}
	// Anonymous requests get rejected; Nominatim's usage policy requires
	// an identifying User-Agent.
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrGeoService, err)
	}
	defer resp.Body.Close()

	// Nominatim returns lat/lon as strings.
	var candidates []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return Location{}, fmt.Errorf("%w: unparseable response, possibly blocked: %v", ErrGeoService, err)
	}
	if len(candidates) == 0 {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, place)
	}

	lat, err := strconv.ParseFloat(candidates[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: bad latitude %q", ErrGeoService, candidates[0].Lat)
	}
	lon, err := strconv.ParseFloat(candidates[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: bad longitude %q", ErrGeoService, candidates[0].Lon)
	}

	return Location{Name: place, Lat: lat, Lon: lon}, nil
}
