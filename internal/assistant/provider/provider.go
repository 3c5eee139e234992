package provider

import (
	"context"
	"fmt"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the one external capability the assistant consumes: a
// synchronous chat completion. Implementations wrap a concrete model
// backend; the assistant service only ever sees this interface.
type Provider interface {
	Name() string
	Complete(ctx context.Context, messages []Message) (string, error)
	SetTemperature(temp float64)
	SetMaxTokens(tokens int)
}

// Options configures provider construction.
type Options struct {
	Kind      string // "openai" or "ollama"
	Model     string
	Token     string
	BaseURL   string
	ServerURL string // ollama only
}

// New builds a provider from configuration. The client is constructed
// once here and handed to the service, never pulled from package state.
func New(opts Options) (Provider, error) {
	switch opts.Kind {
	case "openai", "":
		return NewOpenAIProvider(opts.Model, opts.Token, opts.BaseURL)
	case "ollama":
		return NewOllamaProvider(opts.Model, opts.ServerURL)
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", opts.Kind)
	}
}
