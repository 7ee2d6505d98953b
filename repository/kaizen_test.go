package repository

import (
	"testing"
	"time"

	"flowdeck/model"
)

func TestKaizenRepoCreateDefaults(t *testing.T) {
	repo := NewKaizenRepo()

	goal := repo.Create(&model.KaizenGoal{Goal: "read 10 pages"})

	if goal.ID == "" {
		t.Error("expected a generated ID")
	}
	if goal.Date.IsZero() {
		t.Error("expected zero date to default to creation time")
	}
	if goal.Completed {
		t.Error("expected completed to default to false")
	}
}

func TestKaizenRepoCreateKeepsExplicitDate(t *testing.T) {
	repo := NewKaizenRepo()
	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.Local)

	goal := repo.Create(&model.KaizenGoal{Goal: "stretch", Date: date})
	if !goal.Date.Equal(date) {
		t.Errorf("explicit date was overwritten: %v", goal.Date)
	}
}

func TestKaizenRepoByDateRange(t *testing.T) {
	repo := NewKaizenRepo()
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 9, 0, 0, 0, time.Local)
	}
	repo.Create(&model.KaizenGoal{Goal: "before", Date: day(1)})
	inside := repo.Create(&model.KaizenGoal{Goal: "inside", Date: day(10)})
	edge := repo.Create(&model.KaizenGoal{Goal: "edge", Date: day(20)})
	repo.Create(&model.KaizenGoal{Goal: "after", Date: day(25)})

	got := repo.ByDateRange(day(10), day(20))
	if len(got) != 2 {
		t.Fatalf("expected 2 goals in range, got %d", len(got))
	}
	// Bounds are inclusive and results sort newest first.
	if got[0].ID != edge.ID || got[1].ID != inside.ID {
		t.Error("range results out of order or bounds not inclusive")
	}
}

func TestKaizenRepoUpdate(t *testing.T) {
	repo := NewKaizenRepo()
	goal := repo.Create(&model.KaizenGoal{Goal: "meditate"})
	originalDate := goal.Date

	done := true
	updated, err := repo.Update(goal.ID, model.KaizenGoalPatch{Completed: &done})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Completed {
		t.Error("patched field was not applied")
	}
	// Goals carry no updated timestamp; the date must not move.
	if !updated.Date.Equal(originalDate) {
		t.Error("update touched the date field")
	}

	if _, err := repo.Update("no-such-id", model.KaizenGoalPatch{}); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKaizenRepoDelete(t *testing.T) {
	repo := NewKaizenRepo()
	goal := repo.Create(&model.KaizenGoal{Goal: "tidy desk"})

	if err := repo.Delete(goal.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := repo.Delete(goal.ID); err != ErrNotFound {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
