package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)
