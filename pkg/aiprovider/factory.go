package aiprovider

import (
	"fmt"

	"easynote/config"
	"easynote/pkg/gemini"
	"easynote/pkg/log"
	"easynote/pkg/openaichat"
)

type family int

const (
	familyGemini family = iota
	familyOpenAI
	familyUnknown
)

// familyOf maps a provider id to its wire family. Adding a provider means
// adding a case here and an implementation if it speaks a new protocol.
func familyOf(id string) family {
	switch id {
	case "gemini":
		return familyGemini
	case "openai", "siliconflow", "deepseek":
		return familyOpenAI
	default:
		return familyUnknown
	}
}

// NewGateway creates the concrete gateway for a resolved provider config.
// The logger receives transport diagnostics from the underlying clients.
func NewGateway(cfg config.ProviderConfig, l log.Logger) (Gateway, error) {
	switch familyOf(cfg.ID) {
	case familyGemini:
		client := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
			Logger: l,
		})
		return &geminiGateway{id: cfg.ID, apiKey: cfg.APIKey, client: client}, nil

	case familyOpenAI:
		client := openaichat.New(openaichat.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		return &openAIGateway{id: cfg.ID, apiKey: cfg.APIKey, client: client}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.ID)
	}
}
