package http

import (
	"errors"
	"net/http"

	"easynote/internal/user"
	pkgErrors "easynote/pkg/errors"
)

// mapError translates domain errors into HTTP errors with proper status codes.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "该邮箱已被注册")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "邮箱或密码错误")
	case errors.Is(err, user.ErrWrongPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "旧密码错误")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "用户不存在")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "服务器内部错误")
	}
}
