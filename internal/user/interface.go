package user

import (
	"context"

	"easynote/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
	UpdateMe(ctx context.Context, sc model.Scope, input UpdateMeInput) (model.User, error)
	ChangePassword(ctx context.Context, sc model.Scope, input ChangePasswordInput) error
}
