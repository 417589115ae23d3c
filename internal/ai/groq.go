// README: Groq text-generation provider over the OpenAI-compatible chat API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GroqProvider implements TextGenerator against Groq's OpenAI-compatible
// /chat/completions endpoint. The itinerary adapter uses it because the
// long-form day-by-day plans come out better on the hosted DeepSeek model.
type GroqProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewGroqProvider(apiKey, baseURL, model string) *GroqProvider {
	return &GroqProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and returns the first choice.
func (p *GroqProvider) Generate(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:       p.model,
		Temperature: 0.7,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", ErrGeneration, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", ErrGeneration, err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", ErrGeneration, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", ErrGeneration, err)
	}
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: groq: status %d: %s", ErrGeneration, res.StatusCode, raw)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: groq: %v", ErrGeneration, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: groq: empty choices", ErrGeneration)
	}

	return out.Choices[0].Message.Content, nil
}
