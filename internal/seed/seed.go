// Package seed loads the bundled goal and teacher catalogue into the store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jacksonrr3/tutor-booking/internal/models"
)

//go:embed catalogue.json
var catalogueJSON []byte

type goalWriter interface {
	Upsert(ctx context.Context, goal *models.Goal) error
}

type teacherWriter interface {
	Upsert(ctx context.Context, teacher *models.Teacher) error
}

type catalogueTeacher struct {
	ID      int64               `json:"id"`
	Name    string              `json:"name"`
	About   string              `json:"about"`
	Rating  float64             `json:"rating"`
	Picture string              `json:"picture"`
	Price   int                 `json:"price"`
	Goals   []string            `json:"goals"`
	Free    models.Availability `json:"free"`
}

// Catalogue is the decoded seed data.
type Catalogue struct {
	Goals    []models.Goal
	Teachers []models.Teacher
}

// Load decodes the embedded catalogue.
func Load() (*Catalogue, error) {
	return Parse(catalogueJSON)
}

// Parse decodes a catalogue document. Teacher goals must reference goals
// declared in the same document.
func Parse(raw []byte) (*Catalogue, error) {
	var doc struct {
		Goals    []models.Goal      `json:"goals"`
		Teachers []catalogueTeacher `json:"teachers"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	goals := make(map[string]models.Goal, len(doc.Goals))
	for _, g := range doc.Goals {
		goals[g.Name] = g
	}

	out := &Catalogue{Goals: doc.Goals, Teachers: make([]models.Teacher, 0, len(doc.Teachers))}
	for _, t := range doc.Teachers {
		free, err := t.Free.Encode()
		if err != nil {
			return nil, fmt.Errorf("teacher %d: %w", t.ID, err)
		}
		teacher := models.Teacher{
			ID:      t.ID,
			Name:    t.Name,
			About:   t.About,
			Rating:  t.Rating,
			Picture: t.Picture,
			Price:   t.Price,
			Free:    free,
		}
		for _, name := range t.Goals {
			g, ok := goals[name]
			if !ok {
				return nil, fmt.Errorf("teacher %d: unknown goal %q", t.ID, name)
			}
			teacher.Goals = append(teacher.Goals, g)
		}
		out.Teachers = append(out.Teachers, teacher)
	}
	return out, nil
}

// Seeder writes a catalogue. Re-running it refreshes profile data and goal
// links but never reopens a booked slot: existing schedules are kept.
type Seeder struct {
	goals    goalWriter
	teachers teacherWriter
	logger   *zap.Logger
}

// NewSeeder constructs a Seeder.
func NewSeeder(goals goalWriter, teachers teacherWriter, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{goals: goals, teachers: teachers, logger: logger}
}

// Run upserts goals first, then teachers with their goal links.
func (s *Seeder) Run(ctx context.Context, catalogue *Catalogue) error {
	for i := range catalogue.Goals {
		if err := s.goals.Upsert(ctx, &catalogue.Goals[i]); err != nil {
			return fmt.Errorf("seed goal %s: %w", catalogue.Goals[i].Name, err)
		}
	}
	for i := range catalogue.Teachers {
		if err := s.teachers.Upsert(ctx, &catalogue.Teachers[i]); err != nil {
			return fmt.Errorf("seed teacher %d: %w", catalogue.Teachers[i].ID, err)
		}
	}
	s.logger.Info("catalogue seeded", zap.Int("goals", len(catalogue.Goals)), zap.Int("teachers", len(catalogue.Teachers)))
	return nil
}
