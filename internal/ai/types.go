package ai

import "easynote/pkg/aiprovider"

// --- Canonical AI results ---

// TaskItem is the canonical task record produced from model output.
// Every field is defaulted during normalization; callers never see a
// partially-populated item.
type TaskItem struct {
	Text       string `json:"text"`
	StartDate  string `json:"startDate"`
	DueDate    string `json:"dueDate"`
	Category   string `json:"category"`
	IsArchived bool   `json:"isArchived"`
}

// PlanOutput is the result of a planning request.
type PlanOutput struct {
	Analysis string
	Items    []TaskItem
}

// ChatMessage is one turn of a conversation with the assistant.
type ChatMessage struct {
	Role string
	Text string
}

// TaskContext grounds a chat conversation in one task.
type TaskContext struct {
	Title   string
	Details string
}

// --- UseCase Inputs ---

type ParseTextInput struct {
	Text         string
	TodayISO     string
	TodayDisplay string
	Provider     string
}

type ParseAudioInput struct {
	AudioBase64  string
	MimeType     string
	TodayISO     string
	TodayDisplay string
	Provider     string
}

type PlanInput struct {
	Input        string
	TodayISO     string
	TodayDisplay string
	Provider     string
}

type ChatInput struct {
	Messages []ChatMessage
	Context  TaskContext
	Provider string
}

type FormatNotesInput struct {
	Text     string
	Provider string
}

type TranscribeInput struct {
	AudioBase64 string
	MimeType    string
	Provider    string
}

type DailyInsightInput struct {
	TasksSummary string
	Provider     string
}

// --- UseCase Outputs ---

type ProvidersOutput struct {
	Providers []aiprovider.ProviderStatus
	Current   string
}
