// README: Text-generation backend contract shared by all prompt adapters.
package ai

import (
	"context"
	"errors"
)

// ErrGeneration marks any text-generation backend failure. Adapters wrap it
// so callers can map backend trouble to one user-visible failure class.
var ErrGeneration = errors.New("generation backend failure")

// TextGenerator defines the contract for text-completion backends.
// This interface allows for swapping providers (Gemini, Groq, etc.) per adapter.
type TextGenerator interface {
	// Generate sends a fully formatted prompt and returns the raw text response.
	Generate(ctx context.Context, prompt string) (string, error)
}
