package dto

import (
	"time"

	"flowdeck/model"
)

type CreateKaizenGoalRequest struct {
	Goal      string     `json:"goal" binding:"required"`
	Date      *time.Time `json:"date"`
	Completed *bool      `json:"completed"`
}

type UpdateKaizenGoalRequest struct {
	Goal      *string    `json:"goal" binding:"omitempty,min=1"`
	Date      *time.Time `json:"date"`
	Completed *bool      `json:"completed"`
}

// ToModel applies create-time defaults; a missing date is left zero for the
// repository to stamp with the current time.
func (r *CreateKaizenGoalRequest) ToModel() *model.KaizenGoal {
	goal := &model.KaizenGoal{
		Goal: r.Goal,
	}
	if r.Date != nil {
		goal.Date = *r.Date
	}
	if r.Completed != nil {
		goal.Completed = *r.Completed
	}
	return goal
}

func (r *UpdateKaizenGoalRequest) ToPatch() model.KaizenGoalPatch {
	return model.KaizenGoalPatch{
		Goal:      r.Goal,
		Date:      r.Date,
		Completed: r.Completed,
	}
}
