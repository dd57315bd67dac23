package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

type goalRepository interface {
	List(ctx context.Context) ([]models.Goal, error)
	FindByName(ctx context.Context, name string) (*models.Goal, error)
}

// GoalService exposes learning goals.
type GoalService struct {
	repo  goalRepository
	cache *CacheService
}

// NewGoalService constructs a GoalService.
func NewGoalService(repo goalRepository, cache *CacheService) *GoalService {
	return &GoalService{repo: repo, cache: cache}
}

// List returns every goal in display order.
func (s *GoalService) List(ctx context.Context) ([]models.Goal, error) {
	var cached []models.Goal
	if s.cache.Get(ctx, cacheKeyGoals, &cached) {
		return cached, nil
	}
	goals, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list goals")
	}
	s.cache.Set(ctx, cacheKeyGoals, goals)
	return goals, nil
}

// Get returns a goal by its unique name.
func (s *GoalService) Get(ctx context.Context, name string) (*models.Goal, error) {
	goal, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrGoalNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load goal")
	}
	return goal, nil
}
