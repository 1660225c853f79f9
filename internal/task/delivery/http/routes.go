package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/capture", h.Capture)
		tasks.POST("/capture/delta", h.CaptureDelta)
		tasks.POST("/capture/finalize", h.CaptureFinalize)
		tasks.POST("/capture/abort", h.CaptureAbort)

		tasks.GET("", h.List)
		tasks.GET("/rankings", h.Rankings)
		tasks.GET("/danger-zone", h.DangerZone)

		tasks.PUT("/:id/complete", h.Complete)
		tasks.PUT("/:id/uncomplete", h.Uncomplete)
		tasks.DELETE("/:id", h.Delete)
	}
}
