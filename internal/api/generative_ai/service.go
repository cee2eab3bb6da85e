package generativeAI

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

var ErrMissingAPIKey = errors.New("generative AI api key is not set")

// ContentGenerator is the single call the rest of the app makes against the
// model. AIClient satisfies it; tests substitute their own.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
	Model() string
}

var _ ContentGenerator = (*AIClient)(nil)

type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context, apiKey, model string) (*AIClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

func (ai *AIClient) Model() string {
	return ai.model
}

// GenerateContent sends a single-turn prompt and returns the concatenated
// text of the first candidate. An empty string with a nil error means the
// model produced nothing.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}

// UnavailableGenerator stands in when no API key is configured. Every call
// fails with Err, so callers degrade the same way they would on a transport
// failure.
type UnavailableGenerator struct {
	ModelName string
	Err       error
}

var _ ContentGenerator = UnavailableGenerator{}

func (u UnavailableGenerator) Model() string {
	return u.ModelName
}

func (u UnavailableGenerator) GenerateContent(context.Context, string, *genai.GenerateContentConfig) (string, error) {
	if u.Err == nil {
		return "", ErrMissingAPIKey
	}
	return "", u.Err
}
