package http

import (
	"errors"
	"net/http"

	"easynote/pkg/aiprovider"
	pkgErrors "easynote/pkg/errors"
)

// mapError translates domain errors into HTTP errors with proper status codes.
func (h *handler) mapError(err error) error {
	if errors.Is(err, aiprovider.ErrNotConfigured) {
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "AI 提供商未配置 API Key")
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "AI 服务处理失败")
}
