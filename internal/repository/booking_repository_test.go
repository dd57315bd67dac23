package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

const lockQuery = "SELECT free FROM teachers WHERE id = $1 FOR UPDATE"

func newBooking() *models.Booking {
	return &models.Booking{TeacherID: 2, Name: "Anna", Phone: "1234567", Weekday: "mon", Time: "10:00:00"}
}

func TestBookingRepositoryBookClosesSlotAndInserts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).
			AddRow([]byte(`{"mon":{"10:00:00":true,"12:00:00":true},"tue":{"10:00:00":true}}`)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE teachers SET free = $1 WHERE id = $2")).
		WithArgs([]byte(`{"mon":{"10:00:00":false,"12:00:00":true},"tue":{"10:00:00":true}}`), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (teacher_id, name, phone, weekday, time, created_at)")).
		WithArgs(int64(2), "Anna", "1234567", "mon", "10:00:00", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	booking := newBooking()
	require.NoError(t, repo.Book(context.Background(), booking))
	assert.Equal(t, int64(11), booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryBookRejectsTakenSlot(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow([]byte(`{"mon":{"10:00:00":false}}`)))
	mock.ExpectRollback()

	err := repo.Book(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryBookRejectsUnknownSlot(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow([]byte(`{"tue":{"10:00:00":true}}`)))
	mock.ExpectRollback()

	err := repo.Book(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryBookMissingTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Book(context.Background(), newBooking())
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryBookMalformedSchedule(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow([]byte(`{"mon":`)))
	mock.ExpectRollback()

	err := repo.Book(context.Background(), newBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode availability")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryBookInsertFailureRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"free"}).AddRow([]byte(`{"mon":{"10:00:00":true}}`)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE teachers SET free")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Book(context.Background(), newBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert booking")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepositoryListByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBookingRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE teacher_id = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "name", "phone", "weekday", "time", "created_at"}).
			AddRow(11, 2, "Anna", "1234567", "mon", "10:00:00", now))

	bookings, err := repo.ListByTeacher(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Anna", bookings[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
