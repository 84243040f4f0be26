package aiprovider

import (
	"strings"

	"easynote/config"
)

// displayNames maps provider ids to client-facing names.
var displayNames = map[string]string{
	"gemini":      "Google Gemini",
	"openai":      "OpenAI",
	"siliconflow": "硅基流动",
	"deepseek":    "DeepSeek",
}

// Resolver maps provider identifiers to their immutable configuration.
// Built once at startup from config; read-only afterwards, safe for
// concurrent use without locking.
type Resolver struct {
	defaultID string
	providers []config.ProviderConfig
}

// NewResolver creates a resolver over the closed provider set from config.
func NewResolver(cfg config.AIConfig) *Resolver {
	r := &Resolver{
		defaultID: strings.ToLower(cfg.DefaultProvider),
		providers: cfg.Providers,
	}
	if _, ok := r.lookup(r.defaultID); !ok && len(r.providers) > 0 {
		r.defaultID = r.providers[0].ID
	}
	return r
}

// Resolve returns the configuration for the given provider id,
// case-insensitive. An empty or unknown id resolves to the default
// provider so a misconfigured client degrades instead of breaking the
// call chain. Resolution never fails; missing credentials surface later,
// at call time.
func (r *Resolver) Resolve(id string) config.ProviderConfig {
	if cfg, ok := r.lookup(strings.ToLower(id)); ok {
		return cfg
	}
	cfg, _ := r.lookup(r.defaultID)
	return cfg
}

// DefaultProvider returns the process-wide default provider id.
func (r *Resolver) DefaultProvider() string {
	return r.defaultID
}

// ListAvailability returns the provider list in configuration order.
// Available means a non-empty API key; no live probe is attempted.
func (r *Resolver) ListAvailability() []ProviderStatus {
	statuses := make([]ProviderStatus, 0, len(r.providers))
	for _, p := range r.providers {
		name := displayNames[p.ID]
		if name == "" {
			name = p.ID
		}
		statuses = append(statuses, ProviderStatus{
			ID:            p.ID,
			Name:          name,
			Model:         p.Model,
			Available:     p.APIKey != "",
			SupportsAudio: familyOf(p.ID) == familyGemini,
		})
	}
	return statuses
}

func (r *Resolver) lookup(id string) (config.ProviderConfig, bool) {
	for _, p := range r.providers {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return config.ProviderConfig{}, false
}
