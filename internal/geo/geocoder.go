// README: Geocoding contract and the location value object.
package geo

import (
	"context"
	"errors"
)

// Location is the resolved coordinate pair for a place name.
// Immutable once created; nothing outlives the request that built it.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

var (
	// ErrLocationNotFound means the geocoder answered but had no candidates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrGeoService means the geocoder was unreachable or returned a body we
	// could not parse (public endpoints sometimes block and answer with HTML).
	ErrGeoService = errors.New("geocoding service error")
)

// Geocoder resolves a free-form place name to coordinates.
// Multiple providers implement it; config picks one at startup.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (Location, error)
}
