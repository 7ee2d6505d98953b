package model

import "time"

type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// PomodoroSession is an append-only record of a completed interval.
// Sessions are never updated after creation.
type PomodoroSession struct {
	ID          string      `json:"id"`
	Duration    int         `json:"duration"` // minutes
	Type        SessionType `json:"type"`
	CompletedAt time.Time   `json:"completedAt"`
}
