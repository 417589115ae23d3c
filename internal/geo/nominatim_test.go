package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGeocoder(handler http.HandlerFunc) (*NominatimGeocoder, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewNominatimGeocoder(srv.URL, "wayfarer-test/1.0", 2*time.Second), srv
}

func TestGeocode_FirstCandidateWins(t *testing.T) {
	var gotAgent string
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		if q := r.URL.Query().Get("q"); q != "Delhi" {
			t.Errorf("query = %q, want Delhi", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"lat": "28.6139", "lon": "77.2090", "display_name": "Delhi, India"},
			{"lat": "39.0", "lon": "-84.0", "display_name": "Delhi, Ohio"}
		]`))
	})
	defer srv.Close()

	loc, err := g.Geocode(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if loc.Lat != 28.6139 || loc.Lon != 77.2090 {
		t.Errorf("Geocode() = %+v, want first candidate coordinates", loc)
	}
	if loc.Name != "Delhi" {
		t.Errorf("Name = %q, want Delhi", loc.Name)
	}
	if gotAgent != "wayfarer-test/1.0" {
		t.Errorf("User-Agent = %q, want identifying agent", gotAgent)
	}
}

func TestGeocode_EmptyResultSet(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	defer srv.Close()

	_, err := g.Geocode(context.Background(), "Nowheresville")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("error = %v, want ErrLocationNotFound", err)
	}
}

func TestGeocode_MalformedBody(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		// Public instances answer with an HTML block page when throttled.
		_, _ = w.Write([]byte(`<html>Access blocked</html>`))
	})
	defer srv.Close()

	_, err := g.Geocode(context.Background(), "Delhi")
	if !errors.Is(err, ErrGeoService) {
		t.Errorf("error = %v, want ErrGeoService", err)
	}
}

func TestGeocode_Unreachable(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // deliberately closed

	_, err := g.Geocode(context.Background(), "Delhi")
	if !errors.Is(err, ErrGeoService) {
		t.Errorf("error = %v, want ErrGeoService", err)
	}
}
