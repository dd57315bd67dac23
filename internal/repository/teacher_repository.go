package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

const teacherColumns = "t.id, t.name, t.about, t.rating, t.picture, t.price, t.free"

var teacherOrderings = map[models.TeacherSort]string{
	models.SortRatingDesc: "t.rating DESC, t.id",
	models.SortPriceDesc:  "t.price DESC, t.id",
	models.SortPriceAsc:   "t.price ASC, t.id",
}

// TeacherRepository manages persistence for teachers and their goal links.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns all teachers ordered by the requested sort. Unknown sorts
// and SortRandom shuffle the result.
func (r *TeacherRepository) List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error) {
	order, ok := teacherOrderings[sort]
	if !ok {
		order = "random()"
	}
	query := fmt.Sprintf("SELECT %s FROM teachers t ORDER BY %s", teacherColumns, order)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	if err := r.attachGoals(ctx, teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Sample returns up to n distinct teachers chosen at random.
func (r *TeacherRepository) Sample(ctx context.Context, n int) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers t ORDER BY random() LIMIT $1", teacherColumns)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, n); err != nil {
		return nil, fmt.Errorf("sample teachers: %w", err)
	}
	if err := r.attachGoals(ctx, teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// ListByGoal returns teachers tagged with the goal, best rated first.
func (r *TeacherRepository) ListByGoal(ctx context.Context, goal string) ([]models.Teacher, error) {
	query := fmt.Sprintf(`SELECT %s FROM teachers t
		JOIN teacher_goals tg ON tg.teacher_id = t.id
		JOIN goals g ON g.id = tg.goal_id
		WHERE g.name = $1
		ORDER BY t.rating DESC, t.id`, teacherColumns)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, goal); err != nil {
		return nil, fmt.Errorf("list teachers by goal: %w", err)
	}
	if err := r.attachGoals(ctx, teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID. It returns sql.ErrNoRows when absent.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers t WHERE t.id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	teachers := []models.Teacher{teacher}
	if err := r.attachGoals(ctx, teachers); err != nil {
		return nil, err
	}
	return &teachers[0], nil
}

// teacherUpsertQuery inserts a seeded teacher. On conflict the stored
// schedule is kept: it carries the slots closed by bookings.
const teacherUpsertQuery = `INSERT INTO teachers (id, name, about, rating, picture, price, free)
	VALUES (:id, :name, :about, :rating, :picture, :price, :free)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
	    about = EXCLUDED.about,
	    rating = EXCLUDED.rating,
	    picture = EXCLUDED.picture,
	    price = EXCLUDED.price`

// Upsert writes a seeded teacher with a fixed ID and replaces its goal links
// with the goals named in teacher.Goals. An existing teacher keeps its
// schedule.
func (r *TeacherRepository) Upsert(ctx context.Context, teacher *models.Teacher) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin teacher upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.NamedExecContext(ctx, teacherUpsertQuery, teacher); err != nil {
		return fmt.Errorf("upsert teacher %d: %w", teacher.ID, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM teacher_goals WHERE teacher_id = $1`, teacher.ID); err != nil {
		return fmt.Errorf("clear teacher goals: %w", err)
	}
	const linkQuery = `INSERT INTO teacher_goals (teacher_id, goal_id)
		SELECT $1, id FROM goals WHERE name = $2`
	for _, goal := range teacher.Goals {
		if _, err = tx.ExecContext(ctx, linkQuery, teacher.ID, goal.Name); err != nil {
			return fmt.Errorf("link teacher %d to goal %s: %w", teacher.ID, goal.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit teacher upsert: %w", err)
	}
	return nil
}

func (r *TeacherRepository) attachGoals(ctx context.Context, teachers []models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}
	ids := make([]int64, len(teachers))
	index := make(map[int64]int, len(teachers))
	for i, t := range teachers {
		ids[i] = t.ID
		index[t.ID] = i
	}

	query, args, err := sqlx.In(`SELECT tg.teacher_id, g.id, g.name, g.value FROM teacher_goals tg
		JOIN goals g ON g.id = tg.goal_id
		WHERE tg.teacher_id IN (?)
		ORDER BY g.id`, ids)
	if err != nil {
		return fmt.Errorf("build teacher goals query: %w", err)
	}
	var rows []models.TeacherGoal
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("load teacher goals: %w", err)
	}
	for _, row := range rows {
		if i, ok := index[row.TeacherID]; ok {
			teachers[i].Goals = append(teachers[i].Goals, row.Goal)
		}
	}
	return nil
}
