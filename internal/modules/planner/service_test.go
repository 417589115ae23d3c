package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/guide"
	"wayfarer/internal/modules/hotel"
	"wayfarer/internal/modules/itinerary"
)

const mockGuideText = "Top sights:\n" +
	"1. Eiffel Tower - iconic landmark.\n" +
	"2. Louvre Museum - art collection.\n" +
	"1. Eiffel Tower - repeated in the evening section.\n" +
	"3. Notre Dame - cathedral.\n"

const mockItineraryText = "Day 1:\n- Estimated cost: ₹1500\n" +
	"Day 2:\n- Estimated cost: $300\n" +
	"Day 3:\n- Estimated cost: ₹700\n"

const mockHotelJSON = `[{"name": "Le Meurice", "location": "Rue de Rivoli, Paris", "cost_per_night": "$900"}]`

type fakeGuide struct {
	err error
}

func (f *fakeGuide) Generate(_ context.Context, city string) (guide.Guide, error) {
	if f.err != nil {
		return guide.Guide{}, f.err
	}
	return guide.Guide{
		City:        city,
		Attractions: guide.ExtractAttractions(mockGuideText),
		FullText:    mockGuideText,
	}, nil
}

type fakeHotel struct {
	text string
	err  error
}

func (f *fakeHotel) Recommend(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type fakeItinerary struct {
	err            error
	gotCity        string
	gotDays        int
	gotAttractions []string
	gotActivities  []string
}

func (f *fakeItinerary) Generate(_ context.Context, city string, days int, attractions, activities []string) (string, error) {
	f.gotCity, f.gotDays = city, days
	f.gotAttractions, f.gotActivities = attractions, activities
	if f.err != nil {
		return "", f.err
	}
	return mockItineraryText, nil
}

func TestPlan_EndToEnd(t *testing.T) {
	itin := &fakeItinerary{}
	svc := NewService(&fakeGuide{}, &fakeHotel{text: mockHotelJSON}, itin, nil)

	trip, err := svc.Plan(context.Background(), "Paris", 3)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	wantAttractions := []string{"Eiffel Tower", "Louvre Museum", "Notre Dame"}
	if len(trip.Attractions) != 3 {
		t.Fatalf("Attractions = %v", trip.Attractions)
	}
	for i, want := range wantAttractions {
		if trip.Attractions[i] != want {
			t.Errorf("Attractions[%d] = %q, want %q", i, trip.Attractions[i], want)
		}
	}

	wantCost := itinerary.SumCosts(mockItineraryText)
	if trip.TotalCost != wantCost || wantCost != 2500 {
		t.Errorf("TotalCost = %d, want %d", trip.TotalCost, wantCost)
	}
	if trip.CostLabel != "₹2500" {
		t.Errorf("CostLabel = %q", trip.CostLabel)
	}
	if trip.TopHotel != "Le Meurice" {
		t.Errorf("TopHotel = %q", trip.TopHotel)
	}

	for _, want := range []string{"Paris", "3 days", "Eiffel Tower, Louvre Museum, Notre Dame", "Le Meurice", "₹2500"} {
		if !strings.Contains(trip.SummaryText, want) {
			t.Errorf("SummaryText missing %q:\n%s", want, trip.SummaryText)
		}
	}

	// Itinerary gets the guide's attractions and the fixed default activities.
	if len(itin.gotAttractions) != 3 || itin.gotAttractions[0] != "Eiffel Tower" {
		t.Errorf("itinerary attractions = %v", itin.gotAttractions)
	}
	if len(itin.gotActivities) != 2 || itin.gotActivities[0] != "Paragliding" || itin.gotActivities[1] != "Jet Skiing" {
		t.Errorf("itinerary activities = %v, want the fixed default list", itin.gotActivities)
	}
}

func TestPlan_ProseHotelTextDegradesToMarker(t *testing.T) {
	svc := NewService(&fakeGuide{}, &fakeHotel{text: "Stay anywhere near the river, honestly."}, &fakeItinerary{}, nil)

	trip, err := svc.Plan(context.Background(), "Paris", 2)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if trip.TopHotel != hotel.UnavailableMarker {
		t.Errorf("TopHotel = %q, want %q", trip.TopHotel, hotel.UnavailableMarker)
	}
	if !strings.Contains(trip.SummaryText, hotel.UnavailableMarker) {
		t.Errorf("summary should carry the marker:\n%s", trip.SummaryText)
	}
}

func TestPlan_GenerationFailureAbortsRequest(t *testing.T) {
	svc := NewService(&fakeGuide{err: ai.ErrGeneration}, &fakeHotel{text: mockHotelJSON}, &fakeItinerary{}, nil)
	if _, err := svc.Plan(context.Background(), "Paris", 3); !errors.Is(err, ai.ErrGeneration) {
		t.Errorf("error = %v, want ai.ErrGeneration", err)
	}

	svc = NewService(&fakeGuide{}, &fakeHotel{text: mockHotelJSON}, &fakeItinerary{err: ai.ErrGeneration}, nil)
	if _, err := svc.Plan(context.Background(), "Paris", 3); !errors.Is(err, ai.ErrGeneration) {
		t.Errorf("itinerary error = %v, want ai.ErrGeneration", err)
	}
}

func TestPlan_InputValidation(t *testing.T) {
	svc := NewService(&fakeGuide{}, &fakeHotel{text: mockHotelJSON}, &fakeItinerary{}, nil)

	if _, err := svc.Plan(context.Background(), "  ", 3); !errors.Is(err, ErrBadRequest) {
		t.Errorf("blank city error = %v, want ErrBadRequest", err)
	}
	if _, err := svc.Plan(context.Background(), "Paris", 0); !errors.Is(err, ErrBadRequest) {
		t.Errorf("zero days error = %v, want ErrBadRequest", err)
	}
}
