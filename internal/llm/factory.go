package llm

import (
	"fmt"
	"strings"

	"github.com/mkorsak/provenir/internal/model"
)

// NewProvider creates the configured provider, or nil when generation
// is disabled
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		// Ollama exposes an OpenAI-compatible API; no key needed
		if config.BaseURL == "" {
			config.BaseURL = "http://localhost:11434/v1"
		}
		if config.APIKey == "" {
			config.APIKey = "ollama"
		}
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}
