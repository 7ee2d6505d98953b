package model

import "time"

type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NotePatch lists the mutable fields of a note. A nil field leaves the
// stored value untouched; a set field always wins.
type NotePatch struct {
	Title      *string
	Content    *string
	Tags       *[]string
	IsFavorite *bool
}
