package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

const formRequest = "request"

type requestRepository interface {
	Create(ctx context.Context, req *models.Request, goal string) error
}

// RequestService stores "find me a teacher" submissions.
type RequestService struct {
	repo      requestRepository
	validator *FormValidator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewRequestService constructs a RequestService.
func NewRequestService(repo requestRepository, validator *FormValidator, metrics *MetricsService, logger *zap.Logger) *RequestService {
	if validator == nil {
		validator = NewFormValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{repo: repo, validator: validator, metrics: metrics, logger: logger}
}

// Create validates the form and persists the request against the chosen goal.
func (s *RequestService) Create(ctx context.Context, form RequestForm) (*models.Request, error) {
	form.Normalize()
	if err := s.validator.Check(form); err != nil {
		s.metrics.RecordSubmission(formRequest, OutcomeInvalid)
		return nil, err
	}

	req := &models.Request{Name: form.Name, Phone: form.Phone, Time: form.Time}
	if err := s.repo.Create(ctx, req, form.Goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.RecordSubmission(formRequest, OutcomeInvalid)
			return nil, appErrors.Validation(map[string]string{"goal": "choose one of the listed goals"})
		}
		s.metrics.RecordSubmission(formRequest, OutcomeError)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save request")
	}

	s.metrics.RecordSubmission(formRequest, OutcomeCreated)
	s.logger.Info("request created", zap.Int64("request_id", req.ID), zap.Int64("goal_id", req.GoalID), zap.String("time", req.Time))
	return req, nil
}
