// README: Hazard service aggregates weather, earthquake, and disaster-alert data with per-source degradation.
package hazard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wayfarer/internal/config"
	"wayfarer/internal/geo"
	"wayfarer/internal/metrics"
)

const dateLayout = "2006-01-02"

var ErrBadDate = errors.New("dates must be in YYYY-MM-DD form")

type Deps struct {
	Geocoder geo.Geocoder
	Config   config.HazardConfig
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
}

type Service struct {
	geocoder geo.Geocoder
	weather  weatherClient
	quakes   quakeClient
	alerts   alertsClient
	timeout  time.Duration
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

func NewService(d Deps) *Service {
	client := &http.Client{Timeout: d.Config.CallTimeout}
	return &Service{
		geocoder: d.Geocoder,
		weather:  weatherClient{baseURL: d.Config.WeatherBaseURL, client: client},
		quakes:   quakeClient{baseURL: d.Config.QuakeBaseURL, client: client},
		alerts:   alertsClient{feedURL: d.Config.AlertsFeedURL, client: client},
		timeout:  d.Config.CallTimeout,
		logger:   d.Logger.With().Str("component", "hazard").Logger(),
		metrics:  d.Metrics,
	}
}

// Aggregate geocodes the city and fans out to the three sources. A source
// failing fills its error marker; it never blanks the other two. Only
// geocoding and input validation can fail the whole call.
func (s *Service) Aggregate(ctx context.Context, city, startDate, endDate string) (Report, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return Report{}, fmt.Errorf("%w: start %q", ErrBadDate, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return Report{}, fmt.Errorf("%w: end %q", ErrBadDate, endDate)
	}
	if start.After(end) {
		return Report{}, ErrBadDateRange
	}

	loc, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		return Report{}, err
	}

	report := Report{City: city, Lat: loc.Lat, Lon: loc.Lon}

	// Plain WaitGroup, not errgroup: one source failing must not cancel the
	// siblings, partial failure is a value here.
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		days, err := s.weather.fetchDaily(cctx, loc.Lat, loc.Lon, startDate, endDate)
		s.metrics.RecordUpstream("weather", err)
		if err != nil {
			s.logger.Warn().Err(err).Str("city", city).Msg("weather fetch failed")
			report.Weather = WeatherResult{Err: WeatherUnavailable}
			return
		}
		report.Weather = WeatherResult{Days: days}
	}()

	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		events, err := s.quakes.fetchEvents(cctx, city, startDate, endDate)
		s.metrics.RecordUpstream("quake", err)
		if err != nil {
			s.logger.Warn().Err(err).Str("city", city).Msg("earthquake fetch failed")
			report.Quakes = QuakeResult{Err: QuakesUnavailable}
			return
		}
		report.Quakes = QuakeResult{Events: events}
	}()

	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		alerts, err := s.alerts.fetchAlerts(cctx, city)
		s.metrics.RecordUpstream("alerts", err)
		if err != nil {
			s.logger.Warn().Err(err).Str("city", city).Msg("alert feed fetch failed")
			report.Alerts = AlertsResult{Err: AlertsUnavailable}
			return
		}
		if len(alerts) == 0 {
			report.Alerts = AlertsResult{Marker: NoAlertsFound}
			return
		}
		report.Alerts = AlertsResult{Alerts: alerts}
	}()

	wg.Wait()
	return report, nil
}
