// README: CLI demo; plans a trip for a city and prints the five report sections.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"wayfarer/internal/ai"
	"wayfarer/internal/config"
	"wayfarer/internal/modules/guide"
	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/planner"
)

func main() {
	city := flag.String("city", "Delhi", "city to plan for")
	days := flag.Int("days", 3, "trip length in days")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini provider: %v", err)
	}
	defer gemini.Close()

	groq := ai.NewGroqProvider(cfg.AI.GroqKey, cfg.AI.GroqBaseURL, cfg.AI.GroqModel)

	svc := planner.NewService(
		guide.NewService(gemini),
		hotel.NewService(gemini),
		itinerary.NewService(groq),
		nil,
	)

	trip, err := svc.Plan(ctx, *city, *days)
	if err != nil {
		log.Fatalf("Plan failed: %v", err)
	}

	fmt.Println("=== Travel Guide ===")
	fmt.Println(trip.GuideText)
	fmt.Println("\n=== Itinerary ===")
	fmt.Println(trip.ItineraryText)
	fmt.Println("\n=== Hotel Recommendations ===")
	fmt.Println(trip.HotelText)
	fmt.Println("\n=== Estimated Total Cost ===")
	fmt.Println(trip.CostLabel)
	fmt.Println("\n=== Trip Summary ===")
	fmt.Println(trip.SummaryText)
}
