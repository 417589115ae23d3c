// README: GDACS disaster-alert RSS client.
package hazard

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
)

type alertsClient struct {
	feedURL string
	client  *http.Client
}

// fetchAlerts parses the global feed and keeps entries whose title or summary
// mentions the city (case-insensitive substring, same looseness as the quake filter).
func (c *alertsClient) fetchAlerts(ctx context.Context, city string) ([]Alert, error) {
	parser := gofeed.NewParser()
	parser.Client = c.client

	feed, err := parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, err
	}

	cityLower := strings.ToLower(city)
	var alerts []Alert
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Title), cityLower) &&
			!strings.Contains(strings.ToLower(item.Description), cityLower) {
			continue
		}
		alerts = append(alerts, Alert{
			Event:   item.Title,
			Details: item.Description,
			Link:    item.Link,
		})
	}
	return alerts, nil
}
