// README: Trip plan output bundle handed to the presentation layer.
package planner

import "errors"

var ErrBadRequest = errors.New("bad request")

// Trip is the full planning result for one request. Derived, never persisted;
// recomputed on every call.
type Trip struct {
	City          string
	Days          int
	Attractions   []string
	GuideText     string
	ItineraryText string
	HotelText     string
	TopHotel      string
	TotalCost     int
	CostLabel     string
	SummaryText   string
}
