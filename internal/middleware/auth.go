package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"easynote/internal/model"
	"easynote/pkg/response"
)

// scopeKey is the gin context key carrying the authenticated scope.
const scopeKey = "scope"

// Auth verifies the bearer token and stores the caller scope in the
// request context. Recently verified tokens are served from an
// expiring cache to skip repeated signature checks.
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		payload, ok := m.tokenCache.Get(token)
		if !ok || time.Now().After(payload.ExpiresAt) {
			var err error
			payload, err = m.jwtManager.Verify(token)
			if err != nil {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			m.tokenCache.Add(token, payload)
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID})
		c.Next()
	}
}

// GetScope extracts the authenticated scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
