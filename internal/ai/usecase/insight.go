package usecase

import (
	"context"
	"errors"
	"strings"

	"easynote/internal/ai"
	"easynote/pkg/aiprovider"
)

// fallbackInsight keeps the daily review card populated when the model
// call fails.
const fallbackInsight = "保持节奏，今天也是新的一天。"

// DailyInsight produces a one-line coach remark about the user's recent
// tasks. Failures degrade to a fixed encouragement.
func (uc *implUseCase) DailyInsight(ctx context.Context, ip ai.DailyInsightInput) (string, error) {
	raw, err := uc.callText(ctx, ip.Provider, buildDailyInsightPrompt(ip.TasksSummary))
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return "", err
		}
		uc.l.Warnf(ctx, "ai.DailyInsight degraded: %v", err)
		return fallbackInsight, nil
	}

	// models like to quote themselves despite instructions
	return strings.Trim(strings.TrimSpace(raw), `"'`), nil
}
