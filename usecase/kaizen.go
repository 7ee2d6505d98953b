package usecase

import (
	"context"
	"errors"
	"time"

	"flowdeck/dto"
	"flowdeck/model"
	"flowdeck/repository"
)

type KaizenService struct {
	KaizenRepo *repository.KaizenRepo
}

func NewKaizenService(repo *repository.KaizenRepo) *KaizenService {
	return &KaizenService{KaizenRepo: repo}
}

func (s *KaizenService) ListGoals(ctx context.Context) []*model.KaizenGoal {
	return s.KaizenRepo.List()
}

func (s *KaizenService) GetGoal(ctx context.Context, id string) (*model.KaizenGoal, error) {
	return s.KaizenRepo.Get(id)
}

func (s *KaizenService) CreateGoal(ctx context.Context, req *dto.CreateKaizenGoalRequest) *model.KaizenGoal {
	return s.KaizenRepo.Create(req.ToModel())
}

func (s *KaizenService) UpdateGoal(ctx context.Context, id string, req *dto.UpdateKaizenGoalRequest) (*model.KaizenGoal, error) {
	return s.KaizenRepo.Update(id, req.ToPatch())
}

func (s *KaizenService) DeleteGoal(ctx context.Context, id string) error {
	return s.KaizenRepo.Delete(id)
}

// GoalsByDateRange returns goals between the two bounds, inclusive.
// Date-only bounds widen the end to cover the whole end day.
func (s *KaizenService) GoalsByDateRange(ctx context.Context, start, end string) ([]*model.KaizenGoal, error) {
	startAt, err := ParseDate(start)
	if err != nil {
		return nil, errors.New("invalid start date")
	}
	endAt, err := parseEndDate(end)
	if err != nil {
		return nil, errors.New("invalid end date")
	}
	if endAt.Before(startAt) {
		return nil, errors.New("end date precedes start date")
	}
	return s.KaizenRepo.ByDateRange(startAt, endAt), nil
}

func parseEndDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return time.Parse(time.RFC3339, value)
}
