package repository

// CreateTaskOptions carries the fields needed to insert a task row.
// A non-empty ID is used as-is (sync keeps client-generated ids).
type CreateTaskOptions struct {
	ID        string
	UserID    string
	Text      string
	Details   string
	StartDate string
	DueDate   string
	Timeframe string
	Archived  bool
}

// GetOneTaskOptions filters are combined with AND; zero values are
// skipped, nil pointers are skipped.
type GetOneTaskOptions struct {
	ID       string
	UserID   string
	Text     string
	DueDate  string
	Archived *bool
}

// ListTasksOptions filters the per-user listing.
type ListTasksOptions struct {
	UserID    string
	Timeframe *string
	Archived  *bool
}

// UpdateTaskOptions carries partial updates; nil means keep.
type UpdateTaskOptions struct {
	ID        string
	UserID    string
	Text      *string
	Details   *string
	StartDate *string
	DueDate   *string
	Timeframe *string
	Archived  *bool
}
