package http

import (
	"easynote/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", mw.Auth(), h.Logout)
		auth.GET("/me", mw.Auth(), h.Me)
		auth.PUT("/me", mw.Auth(), h.UpdateMe)
		auth.PUT("/password", mw.Auth(), h.ChangePassword)
	}
}
