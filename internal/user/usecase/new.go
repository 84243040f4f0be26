package usecase

import (
	"easynote/internal/user/repository"
	"easynote/pkg/log"
	"easynote/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	jwtManager scope.Manager
}

// New creates a new user UseCase implementation.
func New(l log.Logger, repo repository.Repository, jwtManager scope.Manager) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
	}
}
