// README: Guide service formats the city prompt and extracts attractions from the response.
package guide

import (
	"context"
	"fmt"

	"wayfarer/internal/ai"
)

const promptTemplate = `You are a travel assistant. Given the following city name, list the top 3 tourist attractions, activity, adventure sports and a short description of each.
For each of the following tourist landmarks in %[1]s, list 2 top-rated restaurants (preferably 5-star Google-rated or highly rated) nearby. For each restaurant, include the name, cuisine type, and a one-line description.
For each of the following tourist landmarks in %[1]s, suggest transportation and estimated cost for public transport and cabs.

City: %[1]s
`

type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Generate produces the full guide text for the city and the attraction list
// parsed out of it.
func (s *Service) Generate(ctx context.Context, city string) (Guide, error) {
	text, err := s.gen.Generate(ctx, fmt.Sprintf(promptTemplate, city))
	if err != nil {
		return Guide{}, fmt.Errorf("travel guide: %w", err)
	}
	return Guide{
		City:        city,
		Attractions: ExtractAttractions(text),
		FullText:    text,
	}, nil
}
