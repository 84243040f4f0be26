package usecase

import (
	"context"

	"easynote/internal/ai"
)

// Providers lists the configured providers and the process-wide
// default, for the client settings screen.
func (uc *implUseCase) Providers(ctx context.Context) ai.ProvidersOutput {
	return ai.ProvidersOutput{
		Providers: uc.resolver.ListAvailability(),
		Current:   uc.resolver.DefaultProvider(),
	}
}
