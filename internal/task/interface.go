package task

import (
	"context"

	"easynote/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CRUD
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	DeleteAll(ctx context.Context, sc model.Scope) (int64, error)

	// Bulk
	BatchCreate(ctx context.Context, sc model.Scope, inputs []CreateTaskInput) (BatchOutput, error)
	Sync(ctx context.Context, sc model.Scope, input SyncInput) (BatchOutput, error)
}
