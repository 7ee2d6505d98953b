package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"flowdeck/model"
	"flowdeck/utils"
)

// NotesRepo is the in-memory note collection. Updates replace the stored
// record wholesale, so pointers handed out earlier are never mutated.
type NotesRepo struct {
	mu    sync.RWMutex
	notes map[string]*model.Note
}

func NewNotesRepo() *NotesRepo {
	return &NotesRepo{
		notes: make(map[string]*model.Note),
	}
}

// Create assigns a fresh ID, stamps both timestamps with the same instant
// and stores the note. It never fails for a well-formed note.
func (r *NotesRepo) Create(note *model.Note) *model.Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	note.ID = utils.GenerateID()
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []string{}
	}

	r.notes[note.ID] = note
	return note
}

func (r *NotesRepo) Get(id string) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists {
		return nil, ErrNotFound
	}
	return note, nil
}

// List returns all notes, most recently updated first.
func (r *NotesRepo) List() []*model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*model.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}
	sortNotesByUpdated(notes)
	return notes
}

// Update merges the patch onto the stored note. UpdatedAt is refreshed on
// every call, whether or not any field changed.
func (r *NotesRepo) Update(id string, patch model.NotePatch) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.notes[id]
	if !exists {
		return nil, ErrNotFound
	}

	updated := *current
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Tags != nil {
		updated.Tags = *patch.Tags
	}
	if patch.IsFavorite != nil {
		updated.IsFavorite = *patch.IsFavorite
	}
	updated.UpdatedAt = time.Now()

	r.notes[id] = &updated
	return &updated, nil
}

func (r *NotesRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[id]; !exists {
		return ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

// Search matches the query case-insensitively against title, content and
// every tag. A query that matches nothing yields an empty slice.
func (r *NotesRepo) Search(query string) []*model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(query)
	matched := make([]*model.Note, 0)
	for _, note := range r.notes {
		if noteMatches(note, lowered) {
			matched = append(matched, note)
		}
	}
	sortNotesByUpdated(matched)
	return matched
}

// ByTag returns notes whose tag list contains the tag exactly.
func (r *NotesRepo) ByTag(tag string) []*model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Note, 0)
	for _, note := range r.notes {
		for _, t := range note.Tags {
			if t == tag {
				matched = append(matched, note)
				break
			}
		}
	}
	sortNotesByUpdated(matched)
	return matched
}

// ByDay returns notes created within the local calendar day containing day.
func (r *NotesRepo) ByDay(day time.Time) []*model.Note {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Note, 0)
	for _, note := range r.notes {
		if !note.CreatedAt.Before(startOfDay) && note.CreatedAt.Before(endOfDay) {
			matched = append(matched, note)
		}
	}
	sortNotesByUpdated(matched)
	return matched
}

func (r *NotesRepo) Count() (total, favorites int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, note := range r.notes {
		total++
		if note.IsFavorite {
			favorites++
		}
	}
	return total, favorites
}

func noteMatches(note *model.Note, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(note.Title), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(note.Content), loweredQuery) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}

func sortNotesByUpdated(notes []*model.Note) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
