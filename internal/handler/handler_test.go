package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx/types"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	"github.com/jacksonrr3/tutor-booking/internal/service"
	"github.com/jacksonrr3/tutor-booking/web"
)

func newTestContext(method, target string, form url.Values, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(web.MustTemplates())

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	c.Params = params
	return c, w
}

func testTeacher() models.Teacher {
	return models.Teacher{
		ID:      1,
		Name:    "Morris Simmmons",
		About:   "Grammar and speaking",
		Rating:  4.2,
		Picture: "https://example.com/1.jpg",
		Price:   900,
		Free:    types.JSONText(`{"mon":{"10:00:00":true}}`),
		Goals:   []models.Goal{{ID: 1, Name: "travel", Value: "For travel"}},
	}
}

type goalServiceMock struct {
	goals []models.Goal
	err   error
}

func (m *goalServiceMock) List(ctx context.Context) ([]models.Goal, error) {
	return m.goals, m.err
}

type teacherServiceMock struct {
	teachers   []models.Teacher
	page       *service.GoalPage
	profile    *service.Profile
	err        error
	lastSort   models.TeacherSort
	lastSample int
	lastGoal   string
	lastID     int64
}

func (m *teacherServiceMock) Sample(ctx context.Context, n int) ([]models.Teacher, error) {
	m.lastSample = n
	return m.teachers, m.err
}

func (m *teacherServiceMock) List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error) {
	m.lastSort = sort
	return m.teachers, m.err
}

func (m *teacherServiceMock) ListByGoal(ctx context.Context, goal string) (*service.GoalPage, error) {
	m.lastGoal = goal
	return m.page, m.err
}

func (m *teacherServiceMock) Profile(ctx context.Context, id int64) (*service.Profile, error) {
	m.lastID = id
	return m.profile, m.err
}
