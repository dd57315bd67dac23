package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	"github.com/jacksonrr3/tutor-booking/internal/service"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
	"github.com/jacksonrr3/tutor-booking/pkg/response"
)

type teacherService interface {
	Sample(ctx context.Context, n int) ([]models.Teacher, error)
	List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error)
	ListByGoal(ctx context.Context, goal string) (*service.GoalPage, error)
	Profile(ctx context.Context, id int64) (*service.Profile, error)
}

type goalService interface {
	List(ctx context.Context) ([]models.Goal, error)
}

// IndexPage is rendered on the landing page.
type IndexPage struct {
	Goals    []models.Goal
	Teachers []models.Teacher
}

// AllPage is the sortable full catalogue.
type AllPage struct {
	Teachers []models.Teacher
	Sort     models.TeacherSort
	Options  []models.SortOption
}

// CatalogHandler serves the read-only catalogue pages.
type CatalogHandler struct {
	teachers   teacherService
	goals      goalService
	sampleSize int
}

// NewCatalogHandler constructs a catalogue handler.
func NewCatalogHandler(teachers teacherService, goals goalService, sampleSize int) *CatalogHandler {
	return &CatalogHandler{teachers: teachers, goals: goals, sampleSize: sampleSize}
}

// Index renders a random selection of teachers with the goal list.
func (h *CatalogHandler) Index(c *gin.Context) {
	goals, err := h.goals.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	teachers, err := h.teachers.Sample(c.Request.Context(), h.sampleSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "index.html", "Tutors", IndexPage{Goals: goals, Teachers: teachers})
}

// All renders every teacher ordered by the "selected" sort code, read from
// the posted form first and the query string otherwise.
func (h *CatalogHandler) All(c *gin.Context) {
	raw := c.PostForm("selected")
	if raw == "" {
		raw = c.Query("selected")
	}
	sort := models.ParseTeacherSort(raw)

	teachers, err := h.teachers.List(c.Request.Context(), sort)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "all.html", "All teachers", AllPage{
		Teachers: teachers,
		Sort:     sort,
		Options:  models.TeacherSortOptions,
	})
}

// Goal renders the teachers tagged with a goal.
func (h *CatalogHandler) Goal(c *gin.Context) {
	page, err := h.teachers.ListByGoal(c.Request.Context(), c.Param("goal"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "goal.html", page.Goal.Value, page)
}

// Profile renders a teacher with the weekly schedule.
func (h *CatalogHandler) Profile(c *gin.Context) {
	id, ok := parseTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrTeacherNotFound)
		return
	}
	profile, err := h.teachers.Profile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "profile.html", profile.Teacher.Name, profile)
}

func parseTeacherID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
