package genai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"yatra/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator)

// GeneratorConfig holds configuration for the text generation client
type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideTextGenerator creates a text generation client based on environment variables
func ProvideTextGenerator(lc fx.Lifecycle) (utils.TextGeneratorInterface, error) {
	config := getGeneratorConfig()

	log.Printf("Initializing %s text generator with model: %s", config.Provider, config.Model)

	generator, err := utils.NewTextGenerator(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		return generator.Close()
	}))

	return generator, nil
}

// getGeneratorConfig reads configuration from environment variables
func getGeneratorConfig() GeneratorConfig {
	provider := utils.GetEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = utils.GetEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = utils.GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GeneratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}
