//go:build integration

package generativeAI

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	if os.Getenv("GOOGLE_GEMINI_API_KEY") == "" {
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func TestNewAIClient_Integration(t *testing.T) {
	ctx := context.Background()

	client, err := NewAIClient(ctx, os.Getenv("GOOGLE_GEMINI_API_KEY"), "")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.client)
	assert.Equal(t, DefaultModel, client.Model())
}

func TestAIClient_GenerateContent_Integration(t *testing.T) {
	ctx := context.Background()

	client, err := NewAIClient(ctx, os.Getenv("GOOGLE_GEMINI_API_KEY"), "")
	require.NoError(t, err)

	t.Run("Plain text prompt", func(t *testing.T) {
		config := &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.1),
		}

		response, err := client.GenerateContent(ctx, "What is the capital of Saudi Arabia? Answer in one word.", config)
		require.NoError(t, err)
		assert.Contains(t, response, "Riyadh")
	})

	t.Run("Structured JSON output", func(t *testing.T) {
		config := &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		}

		response, err := client.GenerateContent(ctx, "List three cities in Saudi Arabia.", config)
		require.NoError(t, err)

		var names []string
		require.NoError(t, json.Unmarshal([]byte(response), &names))
		assert.NotEmpty(t, names)
	})
}
