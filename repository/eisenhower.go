package repository

import (
	"sort"
	"sync"
	"time"

	"flowdeck/model"
	"flowdeck/utils"
)

// EisenhowerRepo is the in-memory task collection. Tasks may reference a
// note by ID; the reference is never validated or cascaded.
type EisenhowerRepo struct {
	mu    sync.RWMutex
	tasks map[string]*model.EisenhowerTask
}

func NewEisenhowerRepo() *EisenhowerRepo {
	return &EisenhowerRepo{
		tasks: make(map[string]*model.EisenhowerTask),
	}
}

// Create assigns a fresh ID, stamps CreatedAt and stores the task.
func (r *EisenhowerRepo) Create(task *model.EisenhowerTask) *model.EisenhowerTask {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = utils.GenerateID()
	task.CreatedAt = time.Now()

	r.tasks[task.ID] = task
	return task
}

func (r *EisenhowerRepo) Get(id string) (*model.EisenhowerTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[id]
	if !exists {
		return nil, ErrNotFound
	}
	return task, nil
}

// List returns all tasks, most recently created first.
func (r *EisenhowerRepo) List() []*model.EisenhowerTask {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.EisenhowerTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}

// Update merges the patch onto the stored task. CreatedAt is immutable and
// tasks carry no updated timestamp.
func (r *EisenhowerRepo) Update(id string, patch model.EisenhowerTaskPatch) (*model.EisenhowerTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.tasks[id]
	if !exists {
		return nil, ErrNotFound
	}

	updated := *current
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Quadrant != nil {
		updated.Quadrant = *patch.Quadrant
	}
	if patch.Completed != nil {
		updated.Completed = *patch.Completed
	}
	if patch.NoteID != nil {
		updated.NoteID = patch.NoteID
	}

	r.tasks[id] = &updated
	return &updated, nil
}

func (r *EisenhowerRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *EisenhowerRepo) Count() (total, completed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, task := range r.tasks {
		total++
		if task.Completed {
			completed++
		}
	}
	return total, completed
}
