package dto

import "flowdeck/model"

// CreateNoteRequest requires the title to be present but not non-empty:
// blank titles are rendered as "Untitled" by the client.
type CreateNoteRequest struct {
	Title      *string  `json:"title" binding:"required"`
	Content    *string  `json:"content"`
	Tags       []string `json:"tags"`
	IsFavorite *bool    `json:"isFavorite"`
}

// UpdateNoteRequest is the fully-optional variant applied on PATCH.
type UpdateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"isFavorite"`
}

// ToModel applies create-time defaults: empty content, empty tag list,
// not a favorite.
func (r *CreateNoteRequest) ToModel() *model.Note {
	note := &model.Note{
		Title: *r.Title,
		Tags:  []string{},
	}
	if r.Content != nil {
		note.Content = *r.Content
	}
	if r.Tags != nil {
		note.Tags = r.Tags
	}
	if r.IsFavorite != nil {
		note.IsFavorite = *r.IsFavorite
	}
	return note
}

func (r *UpdateNoteRequest) ToPatch() model.NotePatch {
	return model.NotePatch{
		Title:      r.Title,
		Content:    r.Content,
		Tags:       r.Tags,
		IsFavorite: r.IsFavorite,
	}
}
