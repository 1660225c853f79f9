package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voicetask/internal/model"
	"voicetask/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	createOut   task.CreateOutput
	createErr   error
	lastCreate  task.CreateInput
	lastScope   model.Scope
	completeErr error
	deleteErr   error
	lastList    task.ListInput
}

func (m *mockUseCase) CreateFromTranscript(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	m.lastScope = sc
	m.lastCreate = input
	return m.createOut, m.createErr
}

func (m *mockUseCase) Complete(ctx context.Context, sc model.Scope, taskID string) (model.ScheduledTask, error) {
	if m.completeErr != nil {
		return model.ScheduledTask{}, m.completeErr
	}
	return model.ScheduledTask{ID: taskID, IsCompleted: true}, nil
}

func (m *mockUseCase) Uncomplete(ctx context.Context, sc model.Scope, taskID string) (model.ScheduledTask, error) {
	return model.ScheduledTask{ID: taskID}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	return m.deleteErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.lastList = input
	return task.ListOutput{}, nil
}

func (m *mockUseCase) Rankings(ctx context.Context, sc model.Scope, limit int) (task.RankingsOutput, error) {
	return task.RankingsOutput{}, nil
}

func (m *mockUseCase) DangerZone(ctx context.Context, sc model.Scope) (task.RankingsOutput, error) {
	return task.RankingsOutput{}, nil
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc, 600)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCaptureEndpoint(t *testing.T) {
	uc := &mockUseCase{
		createOut: task.CreateOutput{
			Task: model.ScheduledTask{
				ID:       "t1",
				Title:    "Pay Rent",
				DueAt:    time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC),
				Priority: model.PriorityHigh,
			},
			Score: model.UrgencyScore{TaskID: "t1", Value: 560, Band: model.BandVeryHigh},
		},
	}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/tasks/capture", gin.H{"transcript": "pay rent tomorrow at 5pm"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.lastCreate.Transcript != "pay rent tomorrow at 5pm" {
		t.Errorf("transcript passed = %q", uc.lastCreate.Transcript)
	}
	if uc.lastScope.UserID != "default" {
		t.Errorf("scope user = %q, want default", uc.lastScope.UserID)
	}

	var resp struct {
		Data captureResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Task.Title != "Pay Rent" {
		t.Errorf("task title = %q", resp.Data.Task.Title)
	}
	if resp.Data.Score.Band != "very_high" {
		t.Errorf("score band = %q", resp.Data.Score.Band)
	}
	if !strings.Contains(w.Body.String(), `"due_at":"2026-03-05 17:00:00"`) {
		t.Errorf("due_at not in wire datetime format: %s", w.Body.String())
	}
	if !time.Time(resp.Data.Task.DueAt).Equal(time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)) {
		t.Errorf("due_at = %v", time.Time(resp.Data.Task.DueAt))
	}
}

func TestCaptureEmptyTranscript(t *testing.T) {
	uc := &mockUseCase{createErr: task.ErrEmptyTranscript}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/tasks/capture", gin.H{"transcript": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCaptureMissingBody(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doJSON(r, http.MethodPost, "/api/v1/tasks/capture", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCaptureSessionLifecycle(t *testing.T) {
	uc := &mockUseCase{
		createOut: task.CreateOutput{
			Task: model.ScheduledTask{ID: "t1", Title: "Call Mom"},
		},
	}
	r := newTestRouter(uc)

	// First delta opens a session.
	w := doJSON(r, http.MethodPost, "/api/v1/tasks/capture/delta", gin.H{"delta": "call mom"})
	if w.Code != http.StatusOK {
		t.Fatalf("delta status = %d, body = %s", w.Code, w.Body.String())
	}
	var deltaOut struct {
		Data deltaResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &deltaOut); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if deltaOut.Data.SessionID == "" {
		t.Fatal("no session id returned")
	}

	// Longer partial replaces the buffer.
	w = doJSON(r, http.MethodPost, "/api/v1/tasks/capture/delta", gin.H{
		"session_id": deltaOut.Data.SessionID,
		"delta":      "call mom every sunday",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second delta status = %d", w.Code)
	}

	// Finalize creates the task from the accumulated text.
	w = doJSON(r, http.MethodPost, "/api/v1/tasks/capture/finalize", gin.H{
		"session_id": deltaOut.Data.SessionID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("finalize status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.lastCreate.Transcript != "call mom every sunday" {
		t.Errorf("finalized transcript = %q", uc.lastCreate.Transcript)
	}

	// Session is gone after finalize.
	w = doJSON(r, http.MethodPost, "/api/v1/tasks/capture/finalize", gin.H{
		"session_id": deltaOut.Data.SessionID,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("finalize after close status = %d, want 404", w.Code)
	}
}

func TestCaptureAbort(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doJSON(r, http.MethodPost, "/api/v1/tasks/capture/delta", gin.H{"delta": "never mind"})
	var deltaOut struct {
		Data deltaResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &deltaOut); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/tasks/capture/abort", gin.H{"session_id": deltaOut.Data.SessionID})
	if w.Code != http.StatusOK {
		t.Fatalf("abort status = %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/tasks/capture/abort", gin.H{"session_id": deltaOut.Data.SessionID})
	if w.Code != http.StatusNotFound {
		t.Errorf("second abort status = %d, want 404", w.Code)
	}
}

func TestListDueTodayQuery(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodGet, "/api/v1/tasks", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.lastList.DueToday {
		t.Error("DueToday set without the query parameter")
	}

	w = doJSON(r, http.MethodGet, "/api/v1/tasks?due=today", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !uc.lastList.DueToday {
		t.Error("due=today did not set DueToday")
	}
}

func TestCompleteNotFound(t *testing.T) {
	uc := &mockUseCase{completeErr: task.ErrTaskNotFound}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPut, "/api/v1/tasks/missing/complete", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCaptureRateLimited(t *testing.T) {
	uc := &mockUseCase{
		createOut: task.CreateOutput{Task: model.ScheduledTask{ID: "t1", Title: "Task"}},
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc, 10) // burst of 1
	RegisterRoutes(r.Group("/api/v1"), h)

	first := doJSON(r, http.MethodPost, "/api/v1/tasks/capture", gin.H{"transcript": "pay rent"})
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}
	second := doJSON(r, http.MethodPost, "/api/v1/tasks/capture", gin.H{"transcript": "pay rent"})
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", second.Code)
	}
}
