// README: Hotel service formats the five-hotel recommendation prompt.
package hotel

import (
	"context"
	"fmt"

	"wayfarer/internal/ai"
)

const promptTemplate = `You are a travel assistant. Suggest 5 top-rated hotels in %s.

- 2 should be premium luxury hotels (7-star or 5-star),
- 2 should be mid-range 3-star hotels (with swimming pool, restaurants, etc.),
- 1 should be a budget economy hotel.

For each hotel, provide:
- Hotel Name
- Location (area or landmark)
- Cost per night (local currency)

Format the output as a JSON list like this:
[
  {
    "name": "Hotel Name",
    "location": "Area, City",
    "cost_per_night": "₹XXXX or $XXX"
  },
  ...
]
`

type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Recommend returns the raw hotel text. Callers attempt the structured parse
// themselves; the response legitimately may not be valid JSON.
func (s *Service) Recommend(ctx context.Context, city string) (string, error) {
	text, err := s.gen.Generate(ctx, fmt.Sprintf(promptTemplate, city))
	if err != nil {
		return "", fmt.Errorf("hotel recommendations: %w", err)
	}
	return text, nil
}
