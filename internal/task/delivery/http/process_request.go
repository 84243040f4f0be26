package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"easynote/internal/model"
	"easynote/internal/task"
)

var (
	errEmptyText     = errors.New("text is required")
	errEmptyTaskList = errors.New("tasks are required")
)

type listReq struct {
	Timeframe *string
	Archived  *bool
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq

	if v, ok := c.GetQuery("timeframe"); ok {
		if !model.ValidTimeframe(v) {
			return req, task.ErrInvalidTimeframe
		}
		req.Timeframe = &v
	}
	if v, ok := c.GetQuery("archived"); ok {
		archived, err := strconv.ParseBool(v)
		if err != nil {
			return req, err
		}
		req.Archived = &archived
	}
	return req, nil
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{Timeframe: r.Timeframe, Archived: r.Archived}
}

type taskPayload struct {
	Text      string `json:"text"`
	Details   string `json:"details"`
	StartDate string `json:"startDate"`
	DueDate   string `json:"dueDate"`
	Timeframe string `json:"timeframe"`
	Archived  bool   `json:"archived"`
}

func (p taskPayload) validate() error {
	if strings.TrimSpace(p.Text) == "" {
		return errEmptyText
	}
	if p.Timeframe != "" && !model.ValidTimeframe(p.Timeframe) {
		return task.ErrInvalidTimeframe
	}
	return nil
}

func (p taskPayload) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Text:      p.Text,
		Details:   p.Details,
		StartDate: p.StartDate,
		DueDate:   p.DueDate,
		Timeframe: p.Timeframe,
		Archived:  p.Archived,
	}
}

func (h *handler) processCreateReq(c *gin.Context) (taskPayload, error) {
	var req taskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

type updateReq struct {
	ID        string  `json:"-"`
	Text      *string `json:"text"`
	Details   *string `json:"details"`
	StartDate *string `json:"startDate"`
	DueDate   *string `json:"dueDate"`
	Timeframe *string `json:"timeframe"`
	Archived  *bool   `json:"archived"`
}

func (r updateReq) validate() error {
	if r.Text != nil && strings.TrimSpace(*r.Text) == "" {
		return errEmptyText
	}
	if r.Timeframe != nil && !model.ValidTimeframe(*r.Timeframe) {
		return task.ErrInvalidTimeframe
	}
	return nil
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:        r.ID,
		Text:      r.Text,
		Details:   r.Details,
		StartDate: r.StartDate,
		DueDate:   r.DueDate,
		Timeframe: r.Timeframe,
		Archived:  r.Archived,
	}
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

type batchCreateReq struct {
	Tasks []taskPayload `json:"tasks"`
}

func (r batchCreateReq) validate() error {
	if len(r.Tasks) == 0 {
		return errEmptyTaskList
	}
	for _, p := range r.Tasks {
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r batchCreateReq) toInputs() []task.CreateTaskInput {
	inputs := make([]task.CreateTaskInput, 0, len(r.Tasks))
	for _, p := range r.Tasks {
		inputs = append(inputs, p.toInput())
	}
	return inputs
}

func (h *handler) processBatchCreateReq(c *gin.Context) (batchCreateReq, error) {
	var req batchCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

type syncTaskPayload struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Details   string `json:"details"`
	StartDate string `json:"startDate"`
	DueDate   string `json:"dueDate"`
	Timeframe string `json:"timeframe"`
	Archived  bool   `json:"archived"`
}

type syncReq struct {
	Tasks         []syncTaskPayload `json:"tasks"`
	MergeStrategy string            `json:"mergeStrategy"`
}

func (r syncReq) toInput() task.SyncInput {
	strategy := task.MergeStrategy(r.MergeStrategy)
	if strategy != task.MergeStrategyReplace {
		strategy = task.MergeStrategyMerge
	}

	tasks := make([]task.SyncTaskInput, 0, len(r.Tasks))
	for _, p := range r.Tasks {
		tasks = append(tasks, task.SyncTaskInput{
			ID:        p.ID,
			Text:      p.Text,
			Details:   p.Details,
			StartDate: p.StartDate,
			DueDate:   p.DueDate,
			Timeframe: p.Timeframe,
			Archived:  p.Archived,
		})
	}
	return task.SyncInput{Tasks: tasks, Strategy: strategy}
}

func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
