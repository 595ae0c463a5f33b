package http

import (
	"github.com/gin-gonic/gin"

	"vif/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. The two
// upstream-calling routes (resolve, transcribe) carry the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.POST("/resolve", mw.RateLimit(), h.Resolve)
		todos.GET("", h.List)
		todos.POST("/:id/toggle", h.Toggle)
		todos.PUT("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)
		todos.POST("/clear", h.Clear)
	}

	speech := rg.Group("/speech")
	{
		speech.POST("/transcriptions", mw.RateLimit(), h.Transcribe)
	}
}
