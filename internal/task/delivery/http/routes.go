package http

import (
	"github.com/gin-gonic/gin"

	"dothis/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// runs behind the rate limit and scope middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.Scope())

	rg.POST("/parse", h.Parse)
	rg.POST("/recurrence/preview", h.PreviewRecurrence)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
		tasks.PUT("/:id/recurrence", h.UpdateRecurrence)
	}
}
