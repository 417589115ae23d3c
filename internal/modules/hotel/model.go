// README: Hotel listing records and the parse-or-raw result type.
package hotel

// Listing is one hotel record from the structured portion of the response.
type Listing struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	CostPerNight string `json:"cost_per_night"`
}

// UnavailableMarker is substituted when hotel text cannot be parsed at all.
const UnavailableMarker = "Hotel data unavailable"

// ParseResult tags hotel text as either structured listings or raw prose.
// The generation backend is asked for a JSON list but gives no guarantee,
// so "failed to parse" is an ordinary value here.
type ParseResult struct {
	Listings []Listing
	Raw      string

	parsed bool
}

// Parsed reports whether the text decoded as a listing array.
func (r ParseResult) Parsed() bool { return r.parsed }

// TopHotelName names the first listing. A parse failure yields the
// unavailable marker; a parsed-but-empty list yields "N/A".
func (r ParseResult) TopHotelName() string {
	if !r.parsed {
		return UnavailableMarker
	}
	if len(r.Listings) == 0 {
		return "N/A"
	}
	return r.Listings[0].Name
}
