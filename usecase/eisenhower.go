package usecase

import (
	"context"

	"flowdeck/dto"
	"flowdeck/model"
	"flowdeck/repository"
)

type EisenhowerService struct {
	EisenhowerRepo *repository.EisenhowerRepo
}

func NewEisenhowerService(repo *repository.EisenhowerRepo) *EisenhowerService {
	return &EisenhowerService{EisenhowerRepo: repo}
}

func (s *EisenhowerService) ListTasks(ctx context.Context) []*model.EisenhowerTask {
	return s.EisenhowerRepo.List()
}

func (s *EisenhowerService) GetTask(ctx context.Context, id string) (*model.EisenhowerTask, error) {
	return s.EisenhowerRepo.Get(id)
}

func (s *EisenhowerService) CreateTask(ctx context.Context, req *dto.CreateEisenhowerTaskRequest) *model.EisenhowerTask {
	return s.EisenhowerRepo.Create(req.ToModel())
}

func (s *EisenhowerService) UpdateTask(ctx context.Context, id string, req *dto.UpdateEisenhowerTaskRequest) (*model.EisenhowerTask, error) {
	return s.EisenhowerRepo.Update(id, req.ToPatch())
}

func (s *EisenhowerService) DeleteTask(ctx context.Context, id string) error {
	return s.EisenhowerRepo.Delete(id)
}
