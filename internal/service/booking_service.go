package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	"github.com/jacksonrr3/tutor-booking/internal/repository"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

const formBooking = "booking"

type bookingRepository interface {
	Book(ctx context.Context, booking *models.Booking) error
}

type teacherLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// BookingSlot is a resolved /booking/:id/:day/:time/ target.
type BookingSlot struct {
	Teacher models.Teacher
	Day     models.Weekday
	Time    string
	Label   string
}

// BookingService reserves teacher time slots.
type BookingService struct {
	repo      bookingRepository
	teachers  teacherLookup
	validator *FormValidator
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewBookingService constructs a BookingService.
func NewBookingService(repo bookingRepository, teachers teacherLookup, validator *FormValidator, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *BookingService {
	if validator == nil {
		validator = NewFormValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{repo: repo, teachers: teachers, validator: validator, cache: cache, metrics: metrics, logger: logger}
}

// Slot resolves the route parameters against the teacher's current schedule.
// Unknown teachers, days or times are not found; a closed slot is a conflict.
func (s *BookingService) Slot(ctx context.Context, teacherID int64, day, rawTime string) (*BookingSlot, error) {
	weekday, ok := models.LookupWeekday(day)
	if !ok {
		return nil, appErrors.ErrSlotNotFound
	}
	slot, ok := models.NormalizeSlot(rawTime)
	if !ok {
		return nil, appErrors.ErrSlotNotFound
	}

	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrTeacherNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	availability, err := teacher.Availability()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read schedule")
	}
	if !availability.Has(weekday.Code, slot) {
		return nil, appErrors.ErrSlotNotFound
	}
	if !availability.IsFree(weekday.Code, slot) {
		return nil, appErrors.ErrSlotTaken
	}

	return &BookingSlot{Teacher: *teacher, Day: weekday, Time: slot, Label: models.SlotLabel(slot)}, nil
}

// Book validates the client details and reserves the slot. Nothing is
// written when validation fails or the slot was taken in the meantime.
func (s *BookingService) Book(ctx context.Context, slot *BookingSlot, form BookingForm) (*models.Booking, error) {
	form.Normalize()
	if err := s.validator.Check(form); err != nil {
		s.metrics.RecordSubmission(formBooking, OutcomeInvalid)
		return nil, err
	}

	booking := &models.Booking{
		TeacherID: slot.Teacher.ID,
		Name:      form.Name,
		Phone:     form.Phone,
		Weekday:   slot.Day.Code,
		Time:      slot.Time,
	}
	if err := s.repo.Book(ctx, booking); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			s.metrics.RecordSubmission(formBooking, OutcomeInvalid)
			return nil, appErrors.ErrTeacherNotFound
		case errors.Is(err, repository.ErrUnknownSlot):
			s.metrics.RecordSubmission(formBooking, OutcomeInvalid)
			return nil, appErrors.ErrSlotNotFound
		case errors.Is(err, repository.ErrSlotTaken):
			s.metrics.RecordSubmission(formBooking, OutcomeConflict)
			s.logger.Info("booking conflict", zap.Int64("teacher_id", booking.TeacherID), zap.String("weekday", booking.Weekday), zap.String("time", booking.Time))
			return nil, appErrors.ErrSlotTaken
		default:
			s.metrics.RecordSubmission(formBooking, OutcomeError)
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to book slot")
		}
	}

	s.cache.Invalidate(ctx, cacheKeyProfile(booking.TeacherID))
	s.metrics.RecordSubmission(formBooking, OutcomeCreated)
	s.logger.Info("booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("teacher_id", booking.TeacherID),
		zap.String("weekday", booking.Weekday),
		zap.String("time", booking.Time),
	)
	return booking, nil
}
