package ai

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Extraction
	ParseText(ctx context.Context, ip ParseTextInput) ([]TaskItem, error)
	ParseAudio(ctx context.Context, ip ParseAudioInput) ([]TaskItem, error)

	// Assistant
	Plan(ctx context.Context, ip PlanInput) (PlanOutput, error)
	Chat(ctx context.Context, ip ChatInput) (string, error)
	FormatNotes(ctx context.Context, ip FormatNotesInput) (string, error)
	Transcribe(ctx context.Context, ip TranscribeInput) (string, error)
	DailyInsight(ctx context.Context, ip DailyInsightInput) (string, error)

	// Settings
	Providers(ctx context.Context) ProvidersOutput
}
