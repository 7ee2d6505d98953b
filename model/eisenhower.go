package model

import "time"

type Quadrant string

const (
	QuadrantUrgentImportant       Quadrant = "urgent-important"
	QuadrantNotUrgentImportant    Quadrant = "not-urgent-important"
	QuadrantUrgentNotImportant    Quadrant = "urgent-not-important"
	QuadrantNotUrgentNotImportant Quadrant = "not-urgent-not-important"
)

// EisenhowerTask is a prioritized task. NoteID is a weak reference to a
// note; deleting the note does not cascade.
type EisenhowerTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Quadrant  Quadrant  `json:"quadrant"`
	Completed bool      `json:"completed"`
	NoteID    *string   `json:"noteId"`
	CreatedAt time.Time `json:"createdAt"`
}

type EisenhowerTaskPatch struct {
	Title     *string
	Quadrant  *Quadrant
	Completed *bool
	NoteID    *string
}
