package aiprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates the resolved provider has no API key.
	// It is raised before any network attempt and must never be degraded
	// silently: it signals a deployment misconfiguration.
	ErrNotConfigured = errors.New("provider API key is not configured")

	// ErrUnknownProvider indicates a provider id outside the closed set.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific transport errors.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
