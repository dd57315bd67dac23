package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

type memoryCache struct {
	items   map[string][]byte
	deleted []string
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.items, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

type mockTeacherRepo struct {
	items     map[int64]models.Teacher
	byGoal    map[string][]models.Teacher
	listSort  models.TeacherSort
	sampleN   int
	findCalls int
	listErr   error
	findErr   error
	onFind    func()
}

func (m *mockTeacherRepo) List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error) {
	m.listSort = sort
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Teacher, 0, len(m.items))
	for _, t := range m.items {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTeacherRepo) Sample(ctx context.Context, n int) ([]models.Teacher, error) {
	m.sampleN = n
	out := make([]models.Teacher, 0, n)
	for _, t := range m.items {
		if len(out) == n {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTeacherRepo) ListByGoal(ctx context.Context, goal string) ([]models.Teacher, error) {
	return m.byGoal[goal], nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	m.findCalls++
	if m.onFind != nil {
		m.onFind()
	}
	if m.findErr != nil {
		return nil, m.findErr
	}
	t, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

type mockGoalRepo struct {
	goals     []models.Goal
	listCalls int
	err       error
}

func (m *mockGoalRepo) List(ctx context.Context) ([]models.Goal, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.goals, nil
}

func (m *mockGoalRepo) FindByName(ctx context.Context, name string) (*models.Goal, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, g := range m.goals {
		if g.Name == name {
			g := g
			return &g, nil
		}
	}
	return nil, sql.ErrNoRows
}

type mockBookingRepo struct {
	booked []models.Booking
	err    error
}

func (m *mockBookingRepo) Book(ctx context.Context, booking *models.Booking) error {
	if m.err != nil {
		return m.err
	}
	booking.ID = int64(len(m.booked) + 1)
	m.booked = append(m.booked, *booking)
	return nil
}

type mockRequestRepo struct {
	created []models.Request
	goals   map[string]int64
	err     error
}

func (m *mockRequestRepo) Create(ctx context.Context, req *models.Request, goal string) error {
	if m.err != nil {
		return m.err
	}
	id, ok := m.goals[goal]
	if !ok {
		return sql.ErrNoRows
	}
	req.ID = int64(len(m.created) + 1)
	req.GoalID = id
	m.created = append(m.created, *req)
	return nil
}

func sampleGoals() []models.Goal {
	return []models.Goal{
		{ID: 1, Name: "travel", Value: "For travel"},
		{ID: 2, Name: "study", Value: "For study"},
	}
}

func sampleTeacher(id int64) models.Teacher {
	return models.Teacher{
		ID:     id,
		Name:   "Morris Simmmons",
		Rating: 4.2,
		Price:  900,
		Free:   types.JSONText(`{"mon":{"10:00:00":true,"12:00:00":false},"tue":{"08:00:00":true}}`),
		Goals:  []models.Goal{{ID: 1, Name: "travel", Value: "For travel"}},
	}
}
