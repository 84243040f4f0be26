package aiprovider

import "context"

// Gateway is one provider family's call surface. Implementations never
// parse the model output: they return raw text for the normalizer.
type Gateway interface {
	// CallText sends a prompt and returns the raw model output.
	CallText(ctx context.Context, prompt string) (string, error)

	// CallAudio sends base64 audio plus an instruction prompt. Families
	// without audio support return a well-formed empty result, not an error.
	CallAudio(ctx context.Context, audioBase64, mimeType, prompt string) (string, error)

	// Name returns the provider id (e.g. "gemini", "siliconflow")
	Name() string

	// Model returns the model being used
	Model() string

	// SupportsAudio reports whether the family accepts audio input.
	SupportsAudio() bool
}

// ProviderStatus is one row of the availability listing consumed by the
// client-facing settings endpoint. No live connectivity check is made.
type ProviderStatus struct {
	ID            string
	Name          string
	Model         string
	Available     bool
	SupportsAudio bool
}
