package task

import "easynote/internal/model"

// MergeStrategy controls how a local-to-cloud sync treats existing rows.
type MergeStrategy string

const (
	MergeStrategyMerge   MergeStrategy = "merge"
	MergeStrategyReplace MergeStrategy = "replace"
)

// --- UseCase Inputs ---

type ListTasksInput struct {
	Timeframe *string
	Archived  *bool
}

type CreateTaskInput struct {
	Text      string
	Details   string
	StartDate string
	DueDate   string
	Timeframe string
	Archived  bool
}

type UpdateTaskInput struct {
	ID        string
	Text      *string
	Details   *string
	StartDate *string
	DueDate   *string
	Timeframe *string
	Archived  *bool
}

// SyncTaskInput is one locally stored task being uploaded. A 36-char ID
// is kept; anything else gets a fresh one.
type SyncTaskInput struct {
	ID        string
	Text      string
	Details   string
	StartDate string
	DueDate   string
	Timeframe string
	Archived  bool
}

type SyncInput struct {
	Tasks    []SyncTaskInput
	Strategy MergeStrategy
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type BatchOutput struct {
	CreatedCount int
	TaskIDs      []string
}
