package usecase

import (
	"easynote/internal/task/repository"
	"easynote/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
