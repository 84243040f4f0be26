package openaichat

import (
	"context"
	"net/http"
)

// IOpenAIChat defines the interface for OpenAI-compatible chat completion
// endpoints (OpenAI, SiliconFlow, DeepSeek and friends share this wire shape).
type IOpenAIChat interface {
	// ChatJSON sends a system + user message pair with the response format
	// forced to a JSON object, returning the raw assistant message content.
	ChatJSON(ctx context.Context, system, user string) (string, error)

	// Model returns the model being used
	Model() string
}

// Config holds the client configuration. The API key is not validated
// here: credential checks happen at call dispatch.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new OpenAI-compatible chat client.
func New(cfg Config) IOpenAIChat {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
