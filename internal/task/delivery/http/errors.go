package http

import (
	"errors"
	"net/http"

	"easynote/internal/task"
	pkgErrors "easynote/pkg/errors"
)

// mapError translates domain errors into HTTP errors with proper status codes.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "任务不存在")
	case errors.Is(err, task.ErrInvalidTimeframe):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "无效的时间分类")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "服务器内部错误")
	}
}
