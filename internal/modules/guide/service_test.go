package guide

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/ai"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestGenerate_BuildsGuideWithAttractions(t *testing.T) {
	gen := &fakeGenerator{reply: "1. Red Fort - historic.\n2. India Gate - memorial.\n3. Lotus Temple - serene.\n"}
	svc := NewService(gen)

	g, err := svc.Generate(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if g.City != "Delhi" {
		t.Errorf("City = %q", g.City)
	}
	if g.FullText != gen.reply {
		t.Errorf("FullText should be the raw backend response")
	}
	if len(g.Attractions) != 3 || g.Attractions[0] != "Red Fort" {
		t.Errorf("Attractions = %v", g.Attractions)
	}
	if !strings.Contains(gen.prompt, "City: Delhi") {
		t.Errorf("prompt missing city interpolation: %q", gen.prompt)
	}
}

func TestGenerate_BackendFailure(t *testing.T) {
	gen := &fakeGenerator{err: ai.ErrGeneration}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(), "Delhi")
	if !errors.Is(err, ai.ErrGeneration) {
		t.Errorf("error = %v, want wrapped ai.ErrGeneration", err)
	}
}
