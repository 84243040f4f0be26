package usecase

import (
	"context"

	"easynote/internal/model"
	"easynote/internal/task"
	"easynote/internal/task/repository"
)

// clientIDLength is the canonical UUID string length; sync keeps
// client ids of this shape and regenerates everything else.
const clientIDLength = 36

// BatchCreate stores several tasks at once, e.g. after AI extraction.
func (uc *implUseCase) BatchCreate(ctx context.Context, sc model.Scope, inputs []task.CreateTaskInput) (task.BatchOutput, error) {
	taskIDs := make([]string, 0, len(inputs))
	for _, input := range inputs {
		created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			UserID:    sc.UserID,
			Text:      input.Text,
			Details:   input.Details,
			StartDate: input.StartDate,
			DueDate:   input.DueDate,
			Timeframe: input.Timeframe,
			Archived:  input.Archived,
		})
		if err != nil {
			return task.BatchOutput{}, err
		}
		taskIDs = append(taskIDs, created.ID)
	}
	return task.BatchOutput{CreatedCount: len(taskIDs), TaskIDs: taskIDs}, nil
}

// Sync uploads locally stored tasks after sign-in. Replace drops the
// cloud copy first; merge deduplicates by id, then by identical
// content (text + due date + archived).
func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope, input task.SyncInput) (task.BatchOutput, error) {
	if input.Strategy == task.MergeStrategyReplace {
		if _, err := uc.repo.DeleteAllTasks(ctx, sc.UserID); err != nil {
			return task.BatchOutput{}, err
		}
	}

	uc.l.Infof(ctx, "task.Sync: user=%s tasks=%d strategy=%s", sc.UserID, len(input.Tasks), input.Strategy)

	taskIDs := make([]string, 0, len(input.Tasks))
	for _, incoming := range input.Tasks {
		existing, err := uc.findExisting(ctx, sc, incoming, input.Strategy)
		if err != nil {
			return task.BatchOutput{}, err
		}
		if existing.ID != "" {
			taskIDs = append(taskIDs, existing.ID)
			continue
		}

		id := ""
		if len(incoming.ID) == clientIDLength {
			id = incoming.ID
		}
		created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			ID:        id,
			UserID:    sc.UserID,
			Text:      incoming.Text,
			Details:   incoming.Details,
			StartDate: incoming.StartDate,
			DueDate:   incoming.DueDate,
			Timeframe: incoming.Timeframe,
			Archived:  incoming.Archived,
		})
		if err != nil {
			return task.BatchOutput{}, err
		}
		taskIDs = append(taskIDs, created.ID)
	}

	return task.BatchOutput{CreatedCount: len(taskIDs), TaskIDs: taskIDs}, nil
}

// findExisting checks for a duplicate of the incoming task: first by
// id, then (merge only) by identical content.
func (uc *implUseCase) findExisting(ctx context.Context, sc model.Scope, incoming task.SyncTaskInput, strategy task.MergeStrategy) (model.Task, error) {
	if incoming.ID != "" {
		existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: incoming.ID, UserID: sc.UserID})
		if err != nil {
			return model.Task{}, err
		}
		if existing.ID != "" {
			return existing, nil
		}
	}

	if strategy == task.MergeStrategyMerge {
		archived := incoming.Archived
		existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{
			UserID:   sc.UserID,
			Text:     incoming.Text,
			DueDate:  incoming.DueDate,
			Archived: &archived,
		})
		if err != nil {
			return model.Task{}, err
		}
		return existing, nil
	}

	return model.Task{}, nil
}
