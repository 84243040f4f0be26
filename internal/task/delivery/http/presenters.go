package http

import (
	"time"

	"easynote/internal/model"
	"easynote/internal/task"
)

type taskResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Details   string `json:"details"`
	StartDate string `json:"startDate"`
	DueDate   string `json:"dueDate"`
	Timeframe string `json:"timeframe"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Text:      t.Text,
		Details:   t.Details,
		StartDate: t.StartDate,
		DueDate:   t.DueDate,
		Timeframe: t.Timeframe,
		Archived:  t.Archived,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type batchResp struct {
	Success      bool     `json:"success"`
	CreatedCount int      `json:"createdCount"`
	TaskIDs      []string `json:"taskIds"`
}

func (h *handler) newBatchResp(out task.BatchOutput) batchResp {
	ids := out.TaskIDs
	if ids == nil {
		ids = []string{}
	}
	return batchResp{Success: true, CreatedCount: out.CreatedCount, TaskIDs: ids}
}

type messageResp struct {
	Message string `json:"message"`
}
