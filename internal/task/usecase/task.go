package usecase

import (
	"context"

	"easynote/internal/model"
	"easynote/internal/task"
	"easynote/internal/task/repository"
)

// List returns the user's tasks with optional timeframe/archived
// filters, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:    sc.UserID,
		Timeframe: input.Timeframe,
		Archived:  input.Archived,
	})
	if err != nil {
		return task.ListTasksOutput{}, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return task.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Create stores a new task for the user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (model.Task, error) {
	return uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:    sc.UserID,
		Text:      input.Text,
		Details:   input.Details,
		StartDate: input.StartDate,
		DueDate:   input.DueDate,
		Timeframe: input.Timeframe,
		Archived:  input.Archived,
	})
}

// Detail returns a single task owned by the user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update applies partial changes to a task owned by the user.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (model.Task, error) {
	if _, err := uc.Detail(ctx, sc, input.ID); err != nil {
		return model.Task{}, err
	}

	return uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:        input.ID,
		UserID:    sc.UserID,
		Text:      input.Text,
		Details:   input.Details,
		StartDate: input.StartDate,
		DueDate:   input.DueDate,
		Timeframe: input.Timeframe,
		Archived:  input.Archived,
	})
}

// Delete removes a task owned by the user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	affected, err := uc.repo.DeleteTask(ctx, id, sc.UserID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// DeleteAll removes every task of the user and reports the count.
func (uc *implUseCase) DeleteAll(ctx context.Context, sc model.Scope) (int64, error) {
	return uc.repo.DeleteAllTasks(ctx, sc.UserID)
}
