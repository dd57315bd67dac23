package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

// RequestRepository persists contact requests.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository constructs a RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create stores the request linked to the named goal and fills ID and
// GoalID. It returns sql.ErrNoRows when the goal does not exist.
func (r *RequestRepository) Create(ctx context.Context, req *models.Request, goal string) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO requests (goal_id, name, phone, time, created_at)
		SELECT id, $2, $3, $4, $5 FROM goals WHERE name = $1
		RETURNING id, goal_id`
	row := r.db.QueryRowxContext(ctx, query, goal, req.Name, req.Phone, req.Time, req.CreatedAt)
	if err := row.Scan(&req.ID, &req.GoalID); err != nil {
		return err
	}
	return nil
}
