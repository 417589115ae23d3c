// README: Trip planner orchestrates guide, itinerary, and hotel generation into one report.
package planner

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"wayfarer/internal/modules/guide"
	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
)

// GuideGenerator produces the city guide and its attraction list.
type GuideGenerator interface {
	Generate(ctx context.Context, city string) (guide.Guide, error)
}

// HotelRecommender produces raw hotel recommendation text.
type HotelRecommender interface {
	Recommend(ctx context.Context, city string) (string, error)
}

// ItineraryGenerator produces raw day-by-day itinerary text.
type ItineraryGenerator interface {
	Generate(ctx context.Context, city string, days int, attractions, activities []string) (string, error)
}

type Service struct {
	guide      GuideGenerator
	hotel      HotelRecommender
	itinerary  ItineraryGenerator
	activities []string
}

// NewService wires the three adapters. activities may be nil, in which case
// the fixed default list is used.
func NewService(g GuideGenerator, h HotelRecommender, i ItineraryGenerator, activities []string) *Service {
	if activities == nil {
		activities = itinerary.DefaultAdventureActivities
	}
	return &Service{guide: g, hotel: h, itinerary: i, activities: activities}
}

// Plan runs the pipeline: guide and hotel text in parallel (they are
// independent), then the itinerary (it needs the guide's attractions), then
// cost summation, hotel parse, and summary assembly. Any generation failure
// fails the whole request; only the hotel parse degrades locally.
func (s *Service) Plan(ctx context.Context, city string, days int) (Trip, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Trip{}, fmt.Errorf("%w: city is required", ErrBadRequest)
	}
	if days < 1 {
		return Trip{}, fmt.Errorf("%w: days must be positive", ErrBadRequest)
	}

	var (
		g         guide.Guide
		hotelText string
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		g, err = s.guide.Generate(egCtx, city)
		return err
	})
	eg.Go(func() error {
		var err error
		hotelText, err = s.hotel.Recommend(egCtx, city)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Trip{}, err
	}

	itineraryText, err := s.itinerary.Generate(ctx, city, days, g.Attractions, s.activities)
	if err != nil {
		return Trip{}, err
	}

	totalCost := itinerary.SumCosts(itineraryText)
	topHotel := hotel.Parse(hotelText).TopHotelName()

	return Trip{
		City:          city,
		Days:          days,
		Attractions:   g.Attractions,
		GuideText:     g.FullText,
		ItineraryText: itineraryText,
		HotelText:     hotelText,
		TopHotel:      topHotel,
		TotalCost:     totalCost,
		CostLabel:     fmt.Sprintf("₹%d", totalCost),
		SummaryText:   buildSummary(city, days, g.Attractions, topHotel, totalCost),
	}, nil
}

func buildSummary(city string, days int, attractions []string, topHotel string, totalCost int) string {
	return strings.TrimSpace(fmt.Sprintf(`Trip Summary:
City: %s
Duration: %d days
Top Attractions: %s
Recommended Hotel: %s
Estimated Total Trip Cost: ₹%d`,
		city, days, strings.Join(attractions, ", "), topHotel, totalCost))
}
