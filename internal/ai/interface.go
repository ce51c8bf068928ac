package ai

import (
	"context"
	"strings"
)

// TextGenerator defines the contract for the LLM backend.
// This interface allows for swapping providers (Gemini, OpenAI) at wiring time.
type TextGenerator interface {
	// Generate sends the prompt and returns the model's text output with
	// any markdown code fences already stripped.
	Generate(ctx context.Context, prompt string) (string, error)
}

// CleanJSON removes markdown code blocks if present (e.g. ```json ... ```).
func CleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
