package usecase

import (
	"context"
	"testing"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/urgency"
)

func seedTask(t *testing.T, uc *implUseCase, id, title string, due time.Time, priority model.Priority) {
	t.Helper()
	_, err := uc.repo.Create(context.Background(), model.ScheduledTask{
		ID:        id,
		UserID:    "u1",
		Title:     title,
		DueAt:     due,
		Frequency: model.FrequencyOnce,
		Priority:  priority,
		CreatedAt: testNow,
	})
	if err != nil {
		t.Fatalf("seed %q: %v", title, err)
	}
}

func TestRankingsOrder(t *testing.T) {
	uc := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	// Same priority, different distances. Closer must rank higher.
	seedTask(t, uc, "far", "Far Task", testNow.Add(72*time.Hour), model.PriorityMedium)
	seedTask(t, uc, "soon", "Soon Task", testNow.Add(10*time.Minute), model.PriorityMedium)
	seedTask(t, uc, "mid", "Mid Task", testNow.Add(3*time.Hour), model.PriorityMedium)

	out, err := uc.Rankings(ctx, sc, 0)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if out.Count != 3 {
		t.Fatalf("Count = %d, want 3", out.Count)
	}
	gotOrder := []string{out.Tasks[0].Task.ID, out.Tasks[1].Task.ID, out.Tasks[2].Task.ID}
	wantOrder := []string{"soon", "mid", "far"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("order = %v, want %v", gotOrder, wantOrder)
		}
	}
}

func TestRankingsLimitAndCompletion(t *testing.T) {
	uc := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	seedTask(t, uc, "a", "Task A", testNow.Add(1*time.Hour), model.PriorityHigh)
	seedTask(t, uc, "b", "Task B", testNow.Add(2*time.Hour), model.PriorityMedium)
	seedTask(t, uc, "c", "Task C", testNow.Add(3*time.Hour), model.PriorityLow)

	out, err := uc.Rankings(ctx, sc, 2)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}

	// Completed tasks drop out of rankings.
	if _, err := uc.Complete(ctx, sc, "a"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	out, err = uc.Rankings(ctx, sc, 0)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	for _, r := range out.Tasks {
		if r.Task.ID == "a" {
			t.Error("completed task still present in rankings")
		}
	}
}

func TestDangerZoneWindow(t *testing.T) {
	uc := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	seedTask(t, uc, "inside", "Inside Window", testNow.Add(15*time.Minute), model.PriorityMedium)
	seedTask(t, uc, "outside", "Outside Window", testNow.Add(2*time.Hour), model.PriorityMedium)
	seedTask(t, uc, "overdue", "Already Late", testNow.Add(-5*time.Minute), model.PriorityMedium)

	out, err := uc.DangerZone(ctx, sc)
	if err != nil {
		t.Fatalf("DangerZone: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1: %+v", out.Count, out.Tasks)
	}
	if out.Tasks[0].Task.ID != "inside" {
		t.Errorf("danger zone task = %q, want %q", out.Tasks[0].Task.ID, "inside")
	}
}

func TestRankingsServeAbsorbedScores(t *testing.T) {
	uc := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	seedTask(t, uc, "a", "Task A", testNow.Add(1*time.Hour), model.PriorityMedium)

	// A scheduler pass hands its scores over; the next ranked view must
	// serve them instead of recomputing.
	uc.AbsorbScores([]urgency.Ranked{{
		Task:  model.ScheduledTask{ID: "a"},
		Score: model.UrgencyScore{TaskID: "a", Value: 999, Band: model.BandCritical, ComputedAt: testNow},
	}})

	out, err := uc.Rankings(ctx, sc, 0)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	if out.Tasks[0].Score.Value != 999 {
		t.Errorf("Score.Value = %v, want the absorbed 999", out.Tasks[0].Score.Value)
	}
}

func TestScoreCacheInvalidatedOnComplete(t *testing.T) {
	uc := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	seedTask(t, uc, "a", "Task A", testNow.Add(1*time.Hour), model.PriorityHigh)

	if _, err := uc.Rankings(ctx, sc, 0); err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if _, ok := uc.scoreCache.Get("a"); !ok {
		t.Fatal("score not cached after Rankings")
	}

	if _, err := uc.Complete(ctx, sc, "a"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, ok := uc.scoreCache.Get("a"); ok {
		t.Error("score cache entry survived completion")
	}
}
