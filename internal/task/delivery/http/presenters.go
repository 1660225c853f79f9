package http

import (
	"strings"

	"voicetask/internal/model"
	"voicetask/internal/task"
	"voicetask/pkg/response"
)

// --- Request DTOs ---

type captureReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

func (r captureReq) toInput() task.CreateInput {
	return task.CreateInput{Transcript: r.Transcript}
}

type deltaReq struct {
	SessionID string `json:"session_id"` // empty opens a new session
	Delta     string `json:"delta" binding:"required"`
}

type finalizeReq struct {
	SessionID string `json:"session_id" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	DueAt          response.DateTime  `json:"due_at"`
	IsRecurring    bool               `json:"is_recurring"`
	RecurrenceDays []string           `json:"recurrence_days,omitempty"`
	DayOfMonth     int                `json:"day_of_month,omitempty"`
	Frequency      string             `json:"frequency"`
	Priority       string             `json:"priority"`
	IsCompleted    bool               `json:"is_completed"`
	CompletedAt    *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt      response.DateTime  `json:"created_at"`
}

func newTaskResp(t model.ScheduledTask) taskResp {
	var days []string
	for _, d := range t.RecurrenceDays.Days() {
		days = append(days, strings.ToLower(d.String()))
	}
	return taskResp{
		ID:             t.ID,
		Title:          t.Title,
		DueAt:          response.DateTime(t.DueAt),
		IsRecurring:    t.IsRecurring,
		RecurrenceDays: days,
		DayOfMonth:     t.DayOfMonth,
		Frequency:      string(t.Frequency),
		Priority:       string(t.Priority),
		IsCompleted:    t.IsCompleted,
		CompletedAt:    (*response.DateTime)(t.CompletedAt),
		CreatedAt:      response.DateTime(t.CreatedAt),
	}
}

type scoreResp struct {
	Value      float64           `json:"value"`
	Band       string            `json:"band"`
	ComputedAt response.DateTime `json:"computed_at"`
}

func newScoreResp(s model.UrgencyScore) scoreResp {
	return scoreResp{
		Value:      s.Value,
		Band:       string(s.Band),
		ComputedAt: response.DateTime(s.ComputedAt),
	}
}

type captureResp struct {
	Task         taskResp  `json:"task"`
	Score        scoreResp `json:"score"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	Enhanced     bool      `json:"enhanced"`
}

func (h *handler) newCaptureResp(out task.CreateOutput) captureResp {
	return captureResp{
		Task:         newTaskResp(out.Task),
		Score:        newScoreResp(out.Score),
		CalendarLink: out.CalendarLink,
		Enhanced:     out.Enhanced,
	}
}

type deltaResp struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

type rankedResp struct {
	Task  taskResp  `json:"task"`
	Score scoreResp `json:"score"`
}

type rankingsResp struct {
	Tasks []rankedResp `json:"tasks"`
	Count int          `json:"count"`
}

func (h *handler) newRankingsResp(out task.RankingsOutput) rankingsResp {
	tasks := make([]rankedResp, len(out.Tasks))
	for i, r := range out.Tasks {
		tasks[i] = rankedResp{Task: newTaskResp(r.Task), Score: newScoreResp(r.Score)}
	}
	return rankingsResp{Tasks: tasks, Count: out.Count}
}

type completionResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCompletionResp(t model.ScheduledTask) completionResp {
	return completionResp{Task: newTaskResp(t)}
}
