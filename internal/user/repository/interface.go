package repository

import (
	"context"

	"easynote/internal/model"
)

// Repository defines all data access methods for the User entity.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
