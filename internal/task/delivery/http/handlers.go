package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"easynote/internal/middleware"
	"easynote/internal/model"
	"easynote/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, newest first, with optional timeframe/archived filters.
// @Tags        Tasks
// @Produce     json
// @Param       timeframe query string false "Filter by timeframe (history/today/future2/later)"
// @Param       archived  query bool   false "Filter by archived state"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Create godoc
// @Summary     Create a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body taskPayload true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(created))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	t, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Applies partial changes; absent fields keep their value.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} messageResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{Message: "任务已删除"})
}

// DeleteAll godoc
// @Summary     Delete all tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} messageResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [DELETE]
func (h *handler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	deleted, err := h.uc.DeleteAll(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{Message: fmt.Sprintf("已删除 %d 个任务", deleted)})
}

// BatchCreate godoc
// @Summary     Create tasks in bulk
// @Description Stores several tasks at once, e.g. after AI extraction.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body batchCreateReq true "Tasks to create"
// @Success     201 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/batch [POST]
func (h *handler) BatchCreate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processBatchCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.BatchCreate(ctx, sc, req.toInputs())
	if err != nil {
		h.l.Errorf(ctx, "uc.BatchCreate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newBatchResp(out))
}

// Sync godoc
// @Summary     Sync local tasks
// @Description Uploads locally stored tasks after sign-in, merging or replacing the cloud copy.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body syncReq true "Local tasks and merge strategy"
// @Success     201 {object} batchResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Sync(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newBatchResp(out))
}
