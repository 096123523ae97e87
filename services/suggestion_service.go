package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const suggestionPrompt = `Suggest 3 yoga poses for the goal: "%s".
Respond only in raw JSON array format, do NOT wrap it in markdown code block. Each object should contain:

- title
- image (generate the yoga pose)
- instructions
- benefits
- english_name (the common English name, for looking the pose up in a pose dataset)
- sanskrit_name (the Sanskrit name, for looking the pose up in a pose dataset)

No extra explanation or formatting.`

// SuggestionService asks Gemini for pose suggestions matching a free-text goal.
type SuggestionService struct {
	client *genai.Client
	model  string
}

// NewSuggestionService builds the Gemini client. An empty API key is not an
// error here; the server still boots and Suggest refuses at call time, like
// every other upstream credential in this app.
func NewSuggestionService(ctx context.Context, apiKey, model string) (*SuggestionService, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	s := &SuggestionService{model: model}

	if apiKey == "" {
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	s.client = client
	return s, nil
}

// Suggest relays the model's text as-is. The response is supposed to be a raw
// JSON array of 3 poses but nothing here parses or validates it; the caller
// owns that.
func (s *SuggestionService) Suggest(ctx context.Context, goal string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	result, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(fmt.Sprintf(suggestionPrompt, goal)),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
