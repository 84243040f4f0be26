package http

import (
	"easynote/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// AI routes are rate limited rather than authenticated: extraction is
// usable before sign-in, and provider calls are the expensive resource.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	aiGroup := rg.Group("/ai")
	{
		aiGroup.POST("/parse-text", mw.RateLimit(), h.ParseText)
		aiGroup.POST("/parse-audio", mw.RateLimit(), h.ParseAudio)
		aiGroup.POST("/plan", mw.RateLimit(), h.Plan)
		aiGroup.POST("/chat", mw.RateLimit(), h.Chat)
		aiGroup.POST("/format-notes", mw.RateLimit(), h.FormatNotes)
		aiGroup.POST("/transcribe", mw.RateLimit(), h.Transcribe)
		aiGroup.POST("/daily-insight", mw.RateLimit(), h.DailyInsight)
		aiGroup.GET("/providers", h.Providers)
	}
}
