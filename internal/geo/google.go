// README: Google Maps geocoder, used when a Maps API key is configured.
package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder resolves place names through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a GoogleGeocoder with the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, place string) (Location, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return Location{}, fmt.Errorf("%w: maps api: %v", ErrGeoService, err)
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, place)
	}

	loc := results[0].Geometry.Location
	return Location{Name: place, Lat: loc.Lat, Lon: loc.Lng}, nil
}
