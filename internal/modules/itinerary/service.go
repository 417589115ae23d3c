// README: Itinerary service formats the day-by-day trip prompt.
package itinerary

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/internal/ai"
)

// DefaultAdventureActivities is the fixed list the planner has always passed.
// It is never derived from the guide or from user input; flagged with product
// as a likely oversight, kept until requirements say otherwise.
var DefaultAdventureActivities = []string{"Paragliding", "Jet Skiing"}

const promptTemplate = `You are a professional travel planner. Create a detailed itinerary for a trip to %s for %d days.

Must include:
- Top tourist attractions: %s
- Adventure sports or activities: %s
- Suggested schedule for each day (morning, afternoon, evening)
- Include meal/restaurant recommendations, travel tips, and rest time
- Focus on realistic travel distances and pacing
- Mention estimated cost per day (budget-friendly range)

Format the output clearly per day.

Example:
Day 1:
- Morning: ...
- Afternoon: ...
- Evening: ...
- Estimated cost: ₹XXXX
`

type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Generate returns the raw itinerary text. Cost annotations in it are summed
// separately by SumCosts.
func (s *Service) Generate(ctx context.Context, city string, days int, attractions, activities []string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, city, days, strings.Join(attractions, ", "), strings.Join(activities, ", "))
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("itinerary: %w", err)
	}
	return text, nil
}
