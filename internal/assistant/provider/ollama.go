package provider

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider over a local Ollama server.
type OllamaProvider struct {
	client      *ollama.LLM
	temperature float64
	maxTokens   int
}

// NewOllamaProvider creates a provider backed by a local Ollama instance.
func NewOllamaProvider(model, serverURL string) (*OllamaProvider, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	return &OllamaProvider{
		client:      client,
		temperature: 0.7,
		maxTokens:   2000,
	}, nil
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Complete implements the Provider interface
func (p *OllamaProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	content, err := toContent(messages)
	if err != nil {
		return "", err
	}

	resp, err := p.client.GenerateContent(ctx, content,
		llms.WithTemperature(p.temperature),
		llms.WithMaxTokens(p.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("ollama completion failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from ollama")
	}

	return resp.Choices[0].Content, nil
}

// SetTemperature adjusts sampling temperature for subsequent calls
func (p *OllamaProvider) SetTemperature(temp float64) {
	p.temperature = temp
}

// SetMaxTokens adjusts the completion token budget for subsequent calls
func (p *OllamaProvider) SetMaxTokens(tokens int) {
	p.maxTokens = tokens
}
