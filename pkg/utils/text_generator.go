package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGeneratorInterface is the external text-generation collaborator. It takes
// the rendered prompt and returns whatever text the model produced; the
// pipeline makes no assumption about its internal structure.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewTextGenerator creates a Gemini or OpenAI backed generator based on config.
func NewTextGenerator(provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextGenerator(apiKey, model), nil
	case "gemini":
		return NewGeminiTextGenerator(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
