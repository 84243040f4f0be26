package http

import (
	"easynote/internal/ai"
	"easynote/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the AI domain.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
