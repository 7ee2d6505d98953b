package repository

import (
	"sort"
	"sync"
	"time"

	"flowdeck/model"
	"flowdeck/utils"
)

// KaizenRepo is the in-memory kaizen goal collection.
type KaizenRepo struct {
	mu    sync.RWMutex
	goals map[string]*model.KaizenGoal
}

func NewKaizenRepo() *KaizenRepo {
	return &KaizenRepo{
		goals: make(map[string]*model.KaizenGoal),
	}
}

// Create assigns a fresh ID and stores the goal. A zero Date is defaulted
// to the current time.
func (r *KaizenRepo) Create(goal *model.KaizenGoal) *model.KaizenGoal {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal.ID = utils.GenerateID()
	if goal.Date.IsZero() {
		goal.Date = time.Now()
	}

	r.goals[goal.ID] = goal
	return goal
}

func (r *KaizenRepo) Get(id string) (*model.KaizenGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, exists := r.goals[id]
	if !exists {
		return nil, ErrNotFound
	}
	return goal, nil
}

// List returns all goals ordered by their day, newest first.
func (r *KaizenRepo) List() []*model.KaizenGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]*model.KaizenGoal, 0, len(r.goals))
	for _, goal := range r.goals {
		goals = append(goals, goal)
	}
	sortGoalsByDate(goals)
	return goals
}

// ByDateRange returns goals whose Date lies within [start, end], inclusive
// on both ends.
func (r *KaizenRepo) ByDateRange(start, end time.Time) []*model.KaizenGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.KaizenGoal, 0)
	for _, goal := range r.goals {
		if !goal.Date.Before(start) && !goal.Date.After(end) {
			matched = append(matched, goal)
		}
	}
	sortGoalsByDate(matched)
	return matched
}

// Update merges the patch onto the stored goal. Goals carry no updated
// timestamp, so nothing is refreshed beyond the patched fields.
func (r *KaizenRepo) Update(id string, patch model.KaizenGoalPatch) (*model.KaizenGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.goals[id]
	if !exists {
		return nil, ErrNotFound
	}

	updated := *current
	if patch.Goal != nil {
		updated.Goal = *patch.Goal
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Completed != nil {
		updated.Completed = *patch.Completed
	}

	r.goals[id] = &updated
	return &updated, nil
}

func (r *KaizenRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.goals[id]; !exists {
		return ErrNotFound
	}
	delete(r.goals, id)
	return nil
}

func (r *KaizenRepo) Count() (total, completed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, goal := range r.goals {
		total++
		if goal.Completed {
			completed++
		}
	}
	return total, completed
}

func sortGoalsByDate(goals []*model.KaizenGoal) {
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Date.After(goals[j].Date)
	})
}
