package usecase

import (
	"context"

	"easynote/config"
	"easynote/pkg/aiprovider"
	"easynote/pkg/log"
)

// implUseCase is the private implementation of ai.UseCase.
type implUseCase struct {
	l        log.Logger
	resolver *aiprovider.Resolver
	gateway  func(cfg config.ProviderConfig) (aiprovider.Gateway, error)
}

// New creates a new AI UseCase implementation.
func New(l log.Logger, resolver *aiprovider.Resolver) *implUseCase {
	return &implUseCase{
		l:        l,
		resolver: resolver,
		gateway: func(cfg config.ProviderConfig) (aiprovider.Gateway, error) {
			return aiprovider.NewGateway(cfg, l)
		},
	}
}

// callText resolves the provider and issues a text call.
func (uc *implUseCase) callText(ctx context.Context, provider, prompt string) (string, error) {
	gw, err := uc.gateway(uc.resolver.Resolve(provider))
	if err != nil {
		return "", err
	}
	return gw.CallText(ctx, prompt)
}

// callAudio resolves the provider and issues an audio call. Families
// without audio support answer with an empty items payload.
func (uc *implUseCase) callAudio(ctx context.Context, provider, audioBase64, mimeType, prompt string) (string, error) {
	gw, err := uc.gateway(uc.resolver.Resolve(provider))
	if err != nil {
		return "", err
	}
	return gw.CallAudio(ctx, audioBase64, mimeType, prompt)
}

// truncateRaw bounds raw model output for diagnostic logging.
func truncateRaw(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
