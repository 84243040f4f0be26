package usecase

import (
	"context"
	"errors"

	"easynote/internal/ai"
	"easynote/internal/model"
	"easynote/pkg/aiprovider"
)

// fallbackParseText is the degraded result for text extraction: the
// original input verbatim, due today.
func fallbackParseText(text, todayISO string) []ai.TaskItem {
	return []ai.TaskItem{{
		Text:       text,
		StartDate:  todayISO,
		DueDate:    todayISO,
		Category:   string(model.TimeframeToday),
		IsArchived: false,
	}}
}

// ParseText extracts tasks from free-form text. Missing provider
// credentials surface as an error; every other failure degrades to a
// single item carrying the raw input.
func (uc *implUseCase) ParseText(ctx context.Context, ip ai.ParseTextInput) ([]ai.TaskItem, error) {
	prompt := buildParseTextPrompt(ip.Text, ip.TodayISO, ip.TodayDisplay)

	raw, err := uc.callText(ctx, ip.Provider, prompt)
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return nil, err
		}
		uc.l.Warnf(ctx, "ai.ParseText degraded: %v", err)
		return fallbackParseText(ip.Text, ip.TodayISO), nil
	}

	items, err := parseTaskItems(raw, ip.TodayISO)
	if err != nil {
		uc.l.Warnf(ctx, "ai.ParseText degraded: %v, raw=%q", err, truncateRaw(raw, 200))
		return fallbackParseText(ip.Text, ip.TodayISO), nil
	}
	return items, nil
}

// ParseAudio extracts tasks from spoken input. Providers without audio
// support answer with an empty item list; failures also degrade to an
// empty list.
func (uc *implUseCase) ParseAudio(ctx context.Context, ip ai.ParseAudioInput) ([]ai.TaskItem, error) {
	prompt := buildParseAudioPrompt(ip.TodayISO, ip.TodayDisplay)

	raw, err := uc.callAudio(ctx, ip.Provider, ip.AudioBase64, ip.MimeType, prompt)
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return nil, err
		}
		uc.l.Warnf(ctx, "ai.ParseAudio degraded: %v", err)
		return []ai.TaskItem{}, nil
	}

	items, err := parseTaskItems(raw, ip.TodayISO)
	if err != nil {
		uc.l.Warnf(ctx, "ai.ParseAudio degraded: %v, raw=%q", err, truncateRaw(raw, 200))
		return []ai.TaskItem{}, nil
	}
	return items, nil
}
