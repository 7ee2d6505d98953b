package repository

import (
	"sort"
	"sync"
	"time"

	"flowdeck/model"
	"flowdeck/utils"
)

// PomodoroRepo holds completed pomodoro intervals. Records are append-only:
// there is no update or single-record lookup because the app never needs one.
type PomodoroRepo struct {
	mu       sync.RWMutex
	sessions map[string]*model.PomodoroSession
}

func NewPomodoroRepo() *PomodoroRepo {
	return &PomodoroRepo{
		sessions: make(map[string]*model.PomodoroSession),
	}
}

// Create assigns a fresh ID, stamps CompletedAt and stores the session.
// CompletedAt is immutable from this point on.
func (r *PomodoroRepo) Create(session *model.PomodoroSession) *model.PomodoroSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = utils.GenerateID()
	session.CompletedAt = time.Now()

	r.sessions[session.ID] = session
	return session
}

// List returns all sessions, most recently completed first.
func (r *PomodoroRepo) List() []*model.PomodoroSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*model.PomodoroSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CompletedAt.After(sessions[j].CompletedAt)
	})
	return sessions
}

func (r *PomodoroRepo) Count() (total, workSessions, totalMinutes int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		total++
		totalMinutes += session.Duration
		if session.Type == model.SessionWork {
			workSessions++
		}
	}
	return total, workSessions, totalMinutes
}
