// Package llm optionally condenses a project's long description into a
// one-line summary. It is strictly additive: the generated fact is
// only Possible and a provider failure never fails the run.
package llm

import (
	"context"
	"fmt"
)

// Provider is a text-generation backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize condenses the request's description into one line
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for summary generation
type SummarizeRequest struct {
	// ProjectName, if known
	ProjectName string

	// Description is the long-form text to condense
	Description string

	// Model overrides the configured model
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse is the generated summary
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for OpenAI-compatible endpoints (e.g. a local Ollama)
	BaseURL string

	// Timeout in seconds per API call
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults with generation disabled
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 200,
	}
}

// BuildPrompt constructs the summarization prompt
func BuildPrompt(req SummarizeRequest) string {
	name := req.ProjectName
	if name == "" {
		name = "this software project"
	}
	return fmt.Sprintf(`Condense the following description of %s into a single sentence of at most 15 words. State only what the software does. Do not mention licensing, installation, or community. Do not add facts that are not in the description.

Description:
%s`, name, req.Description)
}
