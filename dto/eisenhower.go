package dto

import "flowdeck/model"

type CreateEisenhowerTaskRequest struct {
	Title     string         `json:"title" binding:"required"`
	Quadrant  model.Quadrant `json:"quadrant" binding:"required,quadrant"`
	Completed *bool          `json:"completed"`
	NoteID    *string        `json:"noteId"`
}

type UpdateEisenhowerTaskRequest struct {
	Title     *string         `json:"title" binding:"omitempty,min=1"`
	Quadrant  *model.Quadrant `json:"quadrant" binding:"omitempty,quadrant"`
	Completed *bool           `json:"completed"`
	NoteID    *string         `json:"noteId"`
}

func (r *CreateEisenhowerTaskRequest) ToModel() *model.EisenhowerTask {
	task := &model.EisenhowerTask{
		Title:    r.Title,
		Quadrant: r.Quadrant,
		NoteID:   r.NoteID,
	}
	if r.Completed != nil {
		task.Completed = *r.Completed
	}
	return task
}

func (r *UpdateEisenhowerTaskRequest) ToPatch() model.EisenhowerTaskPatch {
	return model.EisenhowerTaskPatch{
		Title:     r.Title,
		Quadrant:  r.Quadrant,
		Completed: r.Completed,
		NoteID:    r.NoteID,
	}
}
