package usecase

import (
	"context"
	"errors"
	"strings"

	"easynote/internal/ai"
	"easynote/pkg/aiprovider"
)

// Chat answers one conversation turn grounded in a task context.
// Failures degrade to an error string so the conversation UI stays
// alive.
func (uc *implUseCase) Chat(ctx context.Context, ip ai.ChatInput) (string, error) {
	prompt := buildChatPrompt(ip.Messages, ip.Context)

	raw, err := uc.callText(ctx, ip.Provider, prompt)
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return "", err
		}
		uc.l.Warnf(ctx, "ai.Chat degraded: %v", err)
		return "Error: " + err.Error(), nil
	}
	return strings.TrimSpace(raw), nil
}
