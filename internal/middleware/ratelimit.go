package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "easynote/pkg/errors"
	"easynote/pkg/response"
)

// aiCallsPerSecond throttles provider calls per client IP. Model calls
// are slow and billed, so the ceiling is low.
const aiCallsPerSecond = 2

// aiCallBurst allows short bursts, e.g. parse + plan fired together.
const aiCallBurst = 5

// RateLimit throttles expensive routes per client IP.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiterFor(c.ClientIP()).Allow() {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "请求过于频繁，请稍后再试"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Middleware) limiterFor(ip string) *rate.Limiter {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	lim, ok := m.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(aiCallsPerSecond), aiCallBurst)
		m.limiters[ip] = lim
	}
	return lim
}
