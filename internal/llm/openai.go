package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider talks to OpenAI or any OpenAI-compatible endpoint
// (including a local Ollama with its compatibility API).
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a provider from configuration
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" && config.BaseURL == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks the endpoint responds to a lightweight call
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Summarize condenses the description via the Chat Completions API
func (p *OpenAIProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 200
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write terse one-line software summaries. Output only the summary sentence.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	summary = strings.Trim(summary, `"`)

	return &SummarizeResponse{
		Summary:    summary,
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
