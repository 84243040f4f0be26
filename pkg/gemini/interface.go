package gemini

import (
	"context"
	"net/http"

	"easynote/pkg/log"
)

// IGemini defines the interface for the Gemini generative API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateText sends a text prompt and returns the raw model output.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateAudio sends a base64 audio payload plus an instruction prompt
	// and returns the raw model output.
	GenerateAudio(ctx context.Context, audioBase64, mimeType, prompt string) (string, error)

	// Model returns the model being used
	Model() string
}

// Config holds the Gemini client configuration.
// The API key is not validated here: credential checks happen at call
// dispatch so an unconfigured provider stays resolvable.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
	// Logger, when set, records transport diagnostics such as a request
	// rescued by the alternate API version path.
	Logger log.Logger
}

// New creates a new Gemini client with the given configuration.
func New(cfg Config) IGemini {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return newGeminiImpl(cfg)
}
