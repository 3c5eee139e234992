package provider

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIProvider implements Provider over any OpenAI-compatible chat API.
// Pointing BaseURL at a compatible gateway (GitHub Models, Azure
// endpoints, vLLM) requires no further changes.
type OpenAIProvider struct {
	client      *openai.LLM
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIProvider creates a provider against an OpenAI-compatible API.
func NewOpenAIProvider(model, token, baseURL string) (*OpenAIProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("openai provider requires an API token")
	}

	opts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: 0.7,
		maxTokens:   2000,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Complete implements the Provider interface
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	content, err := toContent(messages)
	if err != nil {
		return "", err
	}

	resp, err := p.client.GenerateContent(ctx, content,
		llms.WithModel(p.model),
		llms.WithTemperature(p.temperature),
		llms.WithMaxTokens(p.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Content, nil
}

// SetTemperature adjusts sampling temperature for subsequent calls
func (p *OpenAIProvider) SetTemperature(temp float64) {
	p.temperature = temp
}

// SetMaxTokens adjusts the completion token budget for subsequent calls
func (p *OpenAIProvider) SetMaxTokens(tokens int) {
	p.maxTokens = tokens
}

// toContent maps wire-role messages onto langchaingo message parts.
func toContent(messages []Message) ([]llms.MessageContent, error) {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case "system":
			content[i] = llms.TextParts(schema.ChatMessageTypeSystem, msg.Content)
		case "user":
			content[i] = llms.TextParts(schema.ChatMessageTypeHuman, msg.Content)
		case "assistant":
			content[i] = llms.TextParts(schema.ChatMessageTypeAI, msg.Content)
		default:
			return nil, fmt.Errorf("unsupported message role: %s", msg.Role)
		}
	}
	return content, nil
}
