package usecase

import (
	"context"
	"errors"

	"easynote/internal/ai"
	"easynote/pkg/aiprovider"
)

// Plan turns a free-form request into a structured task plan. Failures
// degrade to an empty plan whose analysis carries the error note.
func (uc *implUseCase) Plan(ctx context.Context, ip ai.PlanInput) (ai.PlanOutput, error) {
	prompt := buildPlanPrompt(ip.Input, ip.TodayISO, ip.TodayDisplay)

	raw, err := uc.callText(ctx, ip.Provider, prompt)
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return ai.PlanOutput{}, err
		}
		uc.l.Warnf(ctx, "ai.Plan degraded: %v", err)
		return ai.PlanOutput{
			Analysis: "抱歉，AI 处理出错: " + err.Error(),
			Items:    []ai.TaskItem{},
		}, nil
	}

	out, err := parsePlan(raw, ip.TodayISO)
	if err != nil {
		uc.l.Warnf(ctx, "ai.Plan degraded: %v, raw=%q", err, truncateRaw(raw, 200))
		return ai.PlanOutput{
			Analysis: "抱歉，AI 处理出错: " + err.Error(),
			Items:    []ai.TaskItem{},
		}, nil
	}
	return out, nil
}
