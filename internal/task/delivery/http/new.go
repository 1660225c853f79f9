package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/internal/task"
	pkgLog "voicetask/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Capture(c *gin.Context)
	CaptureDelta(c *gin.Context)
	CaptureFinalize(c *gin.Context)
	CaptureAbort(c *gin.Context)
	List(c *gin.Context)
	Rankings(c *gin.Context)
	DangerZone(c *gin.Context)
	Complete(c *gin.Context)
	Uncomplete(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       task.UseCase
	limiter  *captureLimiter
	sessions *sessionStore
}

// New creates a new HTTP handler for the task domain. capturePerMin caps
// capture requests per device.
func New(l pkgLog.Logger, uc task.UseCase, capturePerMin int) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		limiter:  newCaptureLimiter(capturePerMin),
		sessions: newSessionStore(),
	}
}
