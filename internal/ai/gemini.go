package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"yatra/internal/provider"
)

const geminiModel = "gemini-2.0-flash"

// GeminiClient implements TextGenerator using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient initializes a new Gemini client.
// apiKey should come from the process configuration, not read here.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON responses for structured parsing; low temperature keeps
	// the output close to the requested schema.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)

	return &GeminiClient{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClient) Close() {
	c.client.Close()
}

// Generate sends the prompt and returns the candidate text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiErr(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", provider.Malformed("gemini", errors.New("no response candidates"))
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", provider.Malformed("gemini", errors.New("empty text parts"))
	}

	return CleanJSON(text.String()), nil
}

func classifyGeminiErr(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return provider.FromStatus("gemini", apiErr.Code, apiErr.Message)
	}
	return provider.Classify("gemini", err)
}
