// Package condense optionally shortens wallpaper captions through the
// Gemini API. Absence of credentials or any API failure must fail open: the
// caller keeps the original caption.
package condense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/dixieflatline76/wikiwall/config"
)

// Condenser shortens caption text.
type Condenser interface {
	Condense(ctx context.Context, text string) (string, error)
}

// GeminiCondenser implements Condenser over the Gemini API.
type GeminiCondenser struct {
	client   *genai.Client
	model    string
	maxChars int
}

// NewGeminiCondenser creates a condenser from configuration. It returns
// (nil, nil) when no API key is configured, which callers treat as
// "condensation disabled".
func NewGeminiCondenser(ctx context.Context, cfg config.GeminiConfig) (*GeminiCondenser, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = 100
	}

	return &GeminiCondenser{client: client, model: cfg.Model, maxChars: maxChars}, nil
}

// Condense asks the model for a shortened caption preserving meaning.
func (g *GeminiCondenser) Condense(ctx context.Context, text string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	prompt := fmt.Sprintf(
		"Shorten the following image caption to at most %d characters while preserving its meaning. Reply with only the shortened caption, no quotes.\n\n%s",
		g.maxChars, text)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (g *GeminiCondenser) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	result := strings.TrimSpace(strings.Join(parts, ""))
	if result == "" {
		return "", fmt.Errorf("empty condensed caption")
	}
	return result, nil
}
