package model

import "time"

// KaizenGoal is a single daily-improvement goal. Date identifies the
// calendar day the goal belongs to.
type KaizenGoal struct {
	ID        string    `json:"id"`
	Goal      string    `json:"goal"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

type KaizenGoalPatch struct {
	Goal      *string
	Date      *time.Time
	Completed *bool
}
