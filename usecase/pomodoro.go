package usecase

import (
	"context"

	"flowdeck/dto"
	"flowdeck/model"
	"flowdeck/repository"
)

type PomodoroService struct {
	PomodoroRepo *repository.PomodoroRepo
}

func NewPomodoroService(repo *repository.PomodoroRepo) *PomodoroService {
	return &PomodoroService{PomodoroRepo: repo}
}

func (s *PomodoroService) ListSessions(ctx context.Context) []*model.PomodoroSession {
	return s.PomodoroRepo.List()
}

func (s *PomodoroService) CreateSession(ctx context.Context, req *dto.CreatePomodoroRequest) *model.PomodoroSession {
	return s.PomodoroRepo.Create(req.ToModel())
}
