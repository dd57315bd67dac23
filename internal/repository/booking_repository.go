package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

var (
	// ErrUnknownSlot means the teacher's schedule does not offer the slot.
	ErrUnknownSlot = errors.New("slot not offered")
	// ErrSlotTaken means the slot exists but was already booked.
	ErrSlotTaken = errors.New("slot already booked")
)

// BookingRepository persists bookings together with the availability change.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Book closes the booking's slot in the teacher schedule and inserts the
// booking row in one transaction. The teacher row stays locked between the
// availability check and the write. It returns sql.ErrNoRows for an unknown
// teacher, ErrUnknownSlot or ErrSlotTaken when the slot cannot be booked.
func (r *BookingRepository) Book(ctx context.Context, booking *models.Booking) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var free types.JSONText
	const lockQuery = `SELECT free FROM teachers WHERE id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &free, lockQuery, booking.TeacherID); err != nil {
		return err
	}

	schedule, err := models.DecodeAvailability(free)
	if err != nil {
		return err
	}
	if !schedule.Has(booking.Weekday, booking.Time) {
		err = ErrUnknownSlot
		return err
	}
	if !schedule.Close(booking.Weekday, booking.Time) {
		err = ErrSlotTaken
		return err
	}
	encoded, err := schedule.Encode()
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `UPDATE teachers SET free = $1 WHERE id = $2`, encoded, booking.TeacherID); err != nil {
		return fmt.Errorf("update teacher availability: %w", err)
	}

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	const insertQuery = `INSERT INTO bookings (teacher_id, name, phone, weekday, time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err = tx.GetContext(ctx, &booking.ID, insertQuery,
		booking.TeacherID, booking.Name, booking.Phone, booking.Weekday, booking.Time, booking.CreatedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

// ListByTeacher returns a teacher's bookings, newest first.
func (r *BookingRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Booking, error) {
	const query = `SELECT id, teacher_id, name, phone, weekday, time, created_at
		FROM bookings WHERE teacher_id = $1 ORDER BY created_at DESC, id DESC`
	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, teacherID); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
