// README: Open-Meteo daily forecast client.
package hazard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type weatherClient struct {
	baseURL string
	client  *http.Client
}

// fetchDaily pulls max/min temperature and precipitation for the coordinate
// and date window, timezone auto-detected from the coordinates.
func (c *weatherClient) fetchDaily(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyWeather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("timezone", "auto")
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Daily struct {
			Time             []string  `json:"time"`
			TemperatureMax   []float64 `json:"temperature_2m_max"`
			TemperatureMin   []float64 `json:"temperature_2m_min"`
			PrecipitationSum []float64 `json:"precipitation_sum"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	d := payload.Daily
	if len(d.TemperatureMax) != len(d.Time) || len(d.TemperatureMin) != len(d.Time) || len(d.PrecipitationSum) != len(d.Time) {
		return nil, fmt.Errorf("forecast arrays out of step: %d days", len(d.Time))
	}

	days := make([]DailyWeather, len(d.Time))
	for i, date := range d.Time {
		days[i] = DailyWeather{
			Date:          date,
			MaxTemp:       d.TemperatureMax[i],
			MinTemp:       d.TemperatureMin[i],
			Precipitation: d.PrecipitationSum[i],
		}
	}
	return days, nil
}
