package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/internal/model"
)

const defaultUserID = "default"

// scopeFrom builds the request scope from identity headers. A missing user
// header maps to the single-user default; the device falls back to the
// client IP so rate limiting still has a stable key.
func scopeFrom(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		DeviceID: c.GetHeader("X-Device-ID"),
	}
	if sc.UserID == "" {
		sc.UserID = defaultUserID
	}
	if sc.DeviceID == "" {
		sc.DeviceID = c.ClientIP()
	}
	return sc
}

// processCaptureReq binds and validates the capture request body.
func (h *handler) processCaptureReq(c *gin.Context) (captureReq, error) {
	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDeltaReq binds and validates the capture delta request body.
func (h *handler) processDeltaReq(c *gin.Context) (deltaReq, error) {
	var req deltaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFinalizeReq binds and validates the finalize request body.
func (h *handler) processFinalizeReq(c *gin.Context) (finalizeReq, error) {
	var req finalizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// taskIDParam extracts the task ID path parameter.
func taskIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingTaskID
	}
	return id, nil
}
