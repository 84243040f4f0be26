package sqlite

import (
	"strings"

	repo "easynote/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All set fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Text != "" {
		conditions = append(conditions, "text = ?")
		args = append(args, opt.Text)
	}
	if opt.DueDate != "" {
		conditions = append(conditions, "due_date = ?")
		args = append(args, opt.DueDate)
	}
	if opt.Archived != nil {
		conditions = append(conditions, "archived = ?")
		args = append(args, *opt.Archived)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER clause for ListTasks.
// Newest first, matching the client's feed ordering.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Timeframe != nil {
		conditions = append(conditions, "timeframe = ?")
		args = append(args, *opt.Timeframe)
	}
	if opt.Archived != nil {
		conditions = append(conditions, "archived = ?")
		args = append(args, *opt.Archived)
	}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY created_at DESC", args
}
