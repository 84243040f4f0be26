package model

import "time"

// Timeframe is the coarse scheduling bucket a task falls into.
type Timeframe string

const (
	TimeframeHistory Timeframe = "history"
	TimeframeToday   Timeframe = "today"
	TimeframeFuture2 Timeframe = "future2"
	TimeframeLater   Timeframe = "later"
)

// ValidTimeframe reports whether s is one of the four fixed labels.
func ValidTimeframe(s string) bool {
	switch Timeframe(s) {
	case TimeframeHistory, TimeframeToday, TimeframeFuture2, TimeframeLater:
		return true
	}
	return false
}

// Task is a stored task row. StartDate/DueDate are YYYY-MM-DD strings:
// the product works in calendar days, not instants.
type Task struct {
	ID        string
	UserID    string
	Text      string
	Details   string
	StartDate string
	DueDate   string
	Timeframe string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
