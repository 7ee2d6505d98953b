package usecase

import (
	"context"
	"time"

	"flowdeck/dto"
	"flowdeck/model"
	"flowdeck/repository"
)

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

func NewNotesService(repo *repository.NotesRepo) *NotesService {
	return &NotesService{NotesRepo: repo}
}

func (s *NotesService) ListNotes(ctx context.Context) []*model.Note {
	return s.NotesRepo.List()
}

func (s *NotesService) GetNote(ctx context.Context, id string) (*model.Note, error) {
	return s.NotesRepo.Get(id)
}

func (s *NotesService) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) *model.Note {
	return s.NotesRepo.Create(req.ToModel())
}

func (s *NotesService) UpdateNote(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*model.Note, error) {
	return s.NotesRepo.Update(id, req.ToPatch())
}

func (s *NotesService) DeleteNote(ctx context.Context, id string) error {
	return s.NotesRepo.Delete(id)
}

func (s *NotesService) SearchNotes(ctx context.Context, query string) []*model.Note {
	return s.NotesRepo.Search(query)
}

func (s *NotesService) NotesByTag(ctx context.Context, tag string) []*model.Note {
	return s.NotesRepo.ByTag(tag)
}

// NotesByDate filters notes to the local calendar day named by date.
// An unparseable date matches nothing, mirroring the original behavior.
func (s *NotesService) NotesByDate(ctx context.Context, date string) []*model.Note {
	day, err := ParseDate(date)
	if err != nil {
		return []*model.Note{}
	}
	return s.NotesRepo.ByDay(day)
}

// ParseDate accepts YYYY-MM-DD (interpreted in local time) or RFC 3339.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
