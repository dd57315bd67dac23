package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error)
	Sample(ctx context.Context, n int) ([]models.Teacher, error)
	ListByGoal(ctx context.Context, goal string) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// GoalPage is the content of /goals/:goal/.
type GoalPage struct {
	Goal     models.Goal      `json:"goal"`
	Teachers []models.Teacher `json:"teachers"`
}

// Profile is a teacher together with the decoded weekly schedule.
type Profile struct {
	Teacher  models.Teacher
	Schedule []models.DaySchedule
}

// TeacherService answers catalogue queries.
type TeacherService struct {
	repo   teacherRepository
	goals  *GoalService
	cache  *CacheService
	logger *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, goals *GoalService, cache *CacheService, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, goals: goals, cache: cache, logger: logger}
}

// Sample returns up to n distinct teachers picked at random.
func (s *TeacherService) Sample(ctx context.Context, n int) ([]models.Teacher, error) {
	if n <= 0 {
		return []models.Teacher{}, nil
	}
	teachers, err := s.repo.Sample(ctx, n)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sample teachers")
	}
	return teachers, nil
}

// List returns the whole catalogue in the requested order.
func (s *TeacherService) List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx, models.ParseTeacherSort(string(sort)))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// ListByGoal returns the goal and its teachers, best rated first.
func (s *TeacherService) ListByGoal(ctx context.Context, goal string) (*GoalPage, error) {
	goal = strings.TrimSpace(goal)
	key := cacheKeyGoalTeachers(goal)

	var cached GoalPage
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	g, err := s.goals.Get(ctx, goal)
	if err != nil {
		return nil, err
	}
	teachers, err := s.repo.ListByGoal(ctx, g.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers for goal")
	}
	page := &GoalPage{Goal: *g, Teachers: teachers}
	s.cache.Set(ctx, key, page)
	return page, nil
}

// Get returns a teacher by id. A profile read that overlaps a booking is
// served but not cached, so the closed slot is not hidden by a stale copy.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	key := cacheKeyProfile(id)

	var cached models.Teacher
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}
	generation := s.cache.Generation(key)

	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrTeacherNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	s.cache.SetIfCurrent(ctx, key, teacher, generation)
	return teacher, nil
}

// Profile returns the teacher with the schedule decoded for display.
func (s *TeacherService) Profile(ctx context.Context, id int64) (*Profile, error) {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	availability, err := teacher.Availability()
	if err != nil {
		s.logger.Error("teacher schedule unreadable", zap.Int64("teacher_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read schedule")
	}
	return &Profile{Teacher: *teacher, Schedule: availability.Schedule()}, nil
}
