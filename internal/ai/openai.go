package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"yatra/internal/provider"
)

const (
	defaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	openAIModel           = "gpt-4o-mini"
)

// OpenAIClient implements TextGenerator against the chat completions
// endpoint. The 30s client timeout guards against stalled connections while
// context cancellation is still honoured via NewRequestWithContext.
type OpenAIClient struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		endpoint:   defaultOpenAIEndpoint,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt as a single user message and returns the reply text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:    openAIModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", provider.Classify("openai", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", provider.Classify("openai", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", provider.FromStatus("openai", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", provider.Malformed("openai", err)
	}
	if cr.Error != nil {
		return "", provider.Malformed("openai", errors.New(cr.Error.Message))
	}
	if len(cr.Choices) == 0 {
		return "", provider.Malformed("openai", errors.New("empty choices array"))
	}
	return CleanJSON(cr.Choices[0].Message.Content), nil
}
