package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrr3/tutor-booking/internal/models"
	"github.com/jacksonrr3/tutor-booking/internal/service"
	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
	"github.com/jacksonrr3/tutor-booking/pkg/response"
)

const requestTitle = "Find me a teacher"

type requestService interface {
	Create(ctx context.Context, form service.RequestForm) (*models.Request, error)
}

// RequestPage is the contact request form.
type RequestPage struct {
	Goals []models.Goal
	Times []models.RequestTime
	Form  service.RequestForm
}

// RequestDonePage confirms a stored request.
type RequestDonePage struct {
	Request *models.Request
	Goal    string
	Time    string
}

// RequestHandler serves /request/.
type RequestHandler struct {
	service requestService
	goals   goalService
}

// NewRequestHandler constructs a request handler.
func NewRequestHandler(svc requestService, goals goalService) *RequestHandler {
	return &RequestHandler{service: svc, goals: goals}
}

// Form renders an empty request form.
func (h *RequestHandler) Form(c *gin.Context) {
	page, err := h.page(c.Request.Context(), service.RequestForm{})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "request.html", requestTitle, page)
}

// Submit stores the request or redisplays the form with field messages.
func (h *RequestHandler) Submit(c *gin.Context) {
	var form service.RequestForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "malformed form"))
		return
	}

	req, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		if !errors.Is(err, appErrors.ErrValidation) {
			response.Error(c, err)
			return
		}
		page, pageErr := h.page(c.Request.Context(), form)
		if pageErr != nil {
			response.Error(c, pageErr)
			return
		}
		response.Form(c, "request.html", requestTitle, page, err)
		return
	}

	done := RequestDonePage{Request: req, Goal: form.Goal, Time: req.Time}
	if goals, err := h.goals.List(c.Request.Context()); err == nil {
		for _, g := range goals {
			if g.ID == req.GoalID {
				done.Goal = g.Value
			}
		}
	}
	if rt, ok := models.LookupRequestTime(req.Time); ok {
		done.Time = rt.Label
	}
	response.HTML(c, http.StatusOK, "request_done.html", "Request received", done)
}

func (h *RequestHandler) page(ctx context.Context, form service.RequestForm) (RequestPage, error) {
	goals, err := h.goals.List(ctx)
	if err != nil {
		return RequestPage{}, err
	}
	return RequestPage{Goals: goals, Times: models.RequestTimes, Form: form}, nil
}
