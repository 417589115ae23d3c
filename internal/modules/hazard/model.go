// README: Hazard report aggregate; every source degrades independently to an error marker.
package hazard

import "errors"

// Error markers substituted when a source fails. Distinct from an empty
// result: callers render them inline instead of failing the whole report.
const (
	WeatherUnavailable = "Weather API failed or returned invalid data"
	QuakesUnavailable  = "USGS data unavailable or failed to decode"
	AlertsUnavailable  = "Failed to fetch GDACS alerts"
	NoAlertsFound      = "No GDACS disaster alerts found."
)

var ErrBadDateRange = errors.New("start date must not be after end date")

// DailyWeather is one day of the forecast window.
type DailyWeather struct {
	Date          string  `json:"date"`
	MaxTemp       float64 `json:"max_temp"`
	MinTemp       float64 `json:"min_temp"`
	Precipitation float64 `json:"precipitation"`
}

// WeatherResult is either a daily forecast or an error marker, never both.
type WeatherResult struct {
	Days []DailyWeather `json:"days,omitempty"`
	Err  string         `json:"error,omitempty"`
}

// Earthquake is one catalog event kept by the city filter.
type Earthquake struct {
	Place     string  `json:"place"`
	Magnitude float64 `json:"magnitude"`
	Time      string  `json:"time"` // UTC, "2006-01-02 15:04:05"
	URL       string  `json:"url"`
}

type QuakeResult struct {
	Events []Earthquake `json:"events,omitempty"`
	Err    string       `json:"error,omitempty"`
}

// Alert is one disaster-feed entry mentioning the city.
type Alert struct {
	Event   string `json:"event"`
	Details string `json:"details"`
	Link    string `json:"link"`
}

// AlertsResult carries matched alerts, the explicit no-match marker, or an
// error marker. Callers treat Marker and an empty list identically when rendering.
type AlertsResult struct {
	Alerts []Alert `json:"alerts,omitempty"`
	Marker string  `json:"marker,omitempty"`
	Err    string  `json:"error,omitempty"`
}

// Report combines the three independent sources for one city and date range.
type Report struct {
	City    string        `json:"city"`
	Lat     float64       `json:"latitude"`
	Lon     float64       `json:"longitude"`
	Weather WeatherResult `json:"weather"`
	Quakes  QuakeResult   `json:"earthquakes"`
	Alerts  AlertsResult  `json:"disaster_alerts"`
}
