package dto

import "flowdeck/model"

// CreatePomodoroRequest records a completed interval. Duration is minutes
// and must be positive.
type CreatePomodoroRequest struct {
	Duration *int              `json:"duration" binding:"required,gt=0"`
	Type     model.SessionType `json:"type" binding:"required,oneof=work break"`
}

func (r *CreatePomodoroRequest) ToModel() *model.PomodoroSession {
	return &model.PomodoroSession{
		Duration: *r.Duration,
		Type:     r.Type,
	}
}
