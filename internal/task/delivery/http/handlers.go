package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"voicetask/internal/task"
	"voicetask/pkg/response"
)

// Capture godoc
// @Summary     Capture a finalized transcript
// @Description Turns a finalized voice transcript into a scheduled task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body captureReq true "Transcript"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request / no speech detected"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scopeFrom(c)

	if !h.limiter.allow(sc.DeviceID) {
		response.TooManyRequests(c)
		return
	}

	req, err := h.processCaptureReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromTranscript(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, task.ErrEmptyTranscript) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.CreateFromTranscript: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCaptureResp(output))
}

// CaptureDelta godoc
// @Summary     Feed a speech-to-text partial
// @Description Applies one partial transcript to an open capture session. An empty session_id opens a new session.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body deltaReq true "Partial transcript"
// @Success     200 {object} deltaResp
// @Failure     400 {object} response.Resp "Bad Request / session finalized"
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Router      /api/v1/tasks/capture/delta [POST]
func (h *handler) CaptureDelta(c *gin.Context) {
	sc := scopeFrom(c)

	if !h.limiter.allow(sc.DeviceID) {
		response.TooManyRequests(c)
		return
	}

	req, err := h.processDeltaReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.sessions.open()
	}

	text, err := h.sessions.applyDelta(sessionID, req.Delta)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, deltaResp{SessionID: sessionID, Text: text})
}

// CaptureFinalize godoc
// @Summary     Finalize a capture session
// @Description Closes the session and creates a task from the accumulated transcript.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body finalizeReq true "Session"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request / no speech detected"
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/capture/finalize [POST]
func (h *handler) CaptureFinalize(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scopeFrom(c)

	req, err := h.processFinalizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	text, err := h.sessions.finalize(req.SessionID)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromTranscript(ctx, sc, task.CreateInput{Transcript: text})
	if err != nil {
		if errors.Is(err, task.ErrEmptyTranscript) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.CreateFromTranscript: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCaptureResp(output))
}

// CaptureAbort godoc
// @Summary     Abort a capture session
// @Description Discards the session and its accumulated transcript.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body finalizeReq true "Session"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session not found or expired"
// @Router      /api/v1/tasks/capture/abort [POST]
func (h *handler) CaptureAbort(c *gin.Context) {
	req, err := h.processFinalizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := h.sessions.abort(req.SessionID); err != nil {
		response.NotFound(c, err)
		return
	}
	response.OK(c, nil)
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks in creation order.
// @Tags        Tasks
// @Produce     json
// @Param       due query string false "Set to 'today' to keep only tasks due today"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input := task.ListInput{DueToday: c.Query("due") == "today"}

	output, err := h.uc.List(ctx, scopeFrom(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Rankings godoc
// @Summary     Rank tasks by urgency
// @Description Returns pending tasks ordered by urgency score, most urgent first.
// @Tags        Tasks
// @Produce     json
// @Param       limit query int false "Max results (0 = all)"
// @Success     200 {object} rankingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/rankings [GET]
func (h *handler) Rankings(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	output, err := h.uc.Rankings(ctx, scopeFrom(c), limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.Rankings: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newRankingsResp(output))
}

// DangerZone godoc
// @Summary     Tasks due imminently
// @Description Returns pending tasks whose due time falls inside the warning window.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} rankingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/danger-zone [GET]
func (h *handler) DangerZone(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DangerZone(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.DangerZone: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newRankingsResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [PUT]
func (h *handler) Complete(c *gin.Context) {
	h.setCompleted(c, true)
}

// Uncomplete godoc
// @Summary     Reopen a completed task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/uncomplete [PUT]
func (h *handler) Uncomplete(c *gin.Context) {
	h.setCompleted(c, false)
}

func (h *handler) setCompleted(c *gin.Context, completed bool) {
	ctx := c.Request.Context()
	sc := scopeFrom(c)

	id, err := taskIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	toggle := h.uc.Complete
	if !completed {
		toggle = h.uc.Uncomplete
	}

	t, err := toggle(ctx, sc, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.setCompleted: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCompletionResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scopeFrom(c)

	id, err := taskIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}
