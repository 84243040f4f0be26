package usecase

import (
	"context"
	"errors"
	"strings"

	"easynote/internal/ai"
	"easynote/pkg/aiprovider"
)

// FormatNotes reformats note text into structured Markdown. Failures
// degrade to the original text unchanged.
func (uc *implUseCase) FormatNotes(ctx context.Context, ip ai.FormatNotesInput) (string, error) {
	if strings.TrimSpace(ip.Text) == "" {
		return "", nil
	}

	raw, err := uc.callText(ctx, ip.Provider, buildFormatNotesPrompt(ip.Text))
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return "", err
		}
		uc.l.Warnf(ctx, "ai.FormatNotes degraded: %v", err)
		return ip.Text, nil
	}
	return strings.TrimSpace(raw), nil
}

// Transcribe converts spoken audio to plain text, no task parsing.
// Failures degrade to an empty transcript.
func (uc *implUseCase) Transcribe(ctx context.Context, ip ai.TranscribeInput) (string, error) {
	raw, err := uc.callAudio(ctx, ip.Provider, ip.AudioBase64, ip.MimeType, transcribePrompt)
	if err != nil {
		if errors.Is(err, aiprovider.ErrNotConfigured) {
			return "", err
		}
		uc.l.Warnf(ctx, "ai.Transcribe degraded: %v", err)
		return "", nil
	}
	return strings.TrimSpace(raw), nil
}
