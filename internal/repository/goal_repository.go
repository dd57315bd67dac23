package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

// GoalRepository manages persistence for learning goals.
type GoalRepository struct {
	db *sqlx.DB
}

// NewGoalRepository constructs a GoalRepository.
func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// List returns every goal in seed order.
func (r *GoalRepository) List(ctx context.Context) ([]models.Goal, error) {
	const query = `SELECT id, name, value FROM goals ORDER BY id`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, query); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// FindByName fetches a goal by its unique key, e.g. "travel".
func (r *GoalRepository) FindByName(ctx context.Context, name string) (*models.Goal, error) {
	const query = `SELECT id, name, value FROM goals WHERE name = $1`
	var goal models.Goal
	if err := r.db.GetContext(ctx, &goal, query, name); err != nil {
		return nil, err
	}
	return &goal, nil
}

// Upsert inserts a goal or refreshes its label, filling goal.ID.
func (r *GoalRepository) Upsert(ctx context.Context, goal *models.Goal) error {
	const query = `INSERT INTO goals (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
		RETURNING id`
	if err := r.db.GetContext(ctx, &goal.ID, query, goal.Name, goal.Value); err != nil {
		return fmt.Errorf("upsert goal %s: %w", goal.Name, err)
	}
	return nil
}
