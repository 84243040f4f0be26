package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"easynote/internal/model"
	repo "easynote/internal/task/repository"
)

const taskColumns = `id, user_id, text, details, start_date, due_date, timeframe, archived, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, text, details, start_date, due_date, timeframe, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	t := model.Task{
		ID:        id,
		UserID:    opt.UserID,
		Text:      opt.Text,
		Details:   opt.Details,
		StartDate: opt.StartDate,
		DueDate:   opt.DueDate,
		Timeframe: opt.Timeframe,
		Archived:  opt.Archived,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Text, t.Details, t.StartDate, t.DueDate, t.Timeframe, t.Archived, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.Text, &t.Details, &t.StartDate, &t.DueDate, &t.Timeframe, &t.Archived, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the user's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Text, &t.Details, &t.StartDate, &t.DueDate, &t.Timeframe, &t.Archived, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask applies partial changes to one of the user's tasks and
// returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET text = COALESCE(?, text),
		    details = COALESCE(?, details),
		    start_date = COALESCE(?, start_date),
		    due_date = COALESCE(?, due_date),
		    timeframe = COALESCE(?, timeframe),
		    archived = COALESCE(?, archived),
		    updated_at = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		opt.Text, opt.Details, opt.StartDate, opt.DueDate, opt.Timeframe, opt.Archived,
		time.Now(), opt.ID, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTask removes one of the user's tasks and reports how many rows
// went away.
func (r *implRepository) DeleteTask(ctx context.Context, id, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return 0, repo.ErrFailedToDelete
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

// DeleteAllTasks removes every task of the user.
func (r *implRepository) DeleteAllTasks(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ?`, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAllTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}
