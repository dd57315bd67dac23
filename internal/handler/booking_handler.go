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

const bookingTitle = "Booking"

type bookingService interface {
	Slot(ctx context.Context, teacherID int64, day, rawTime string) (*service.BookingSlot, error)
	Book(ctx context.Context, slot *service.BookingSlot, form service.BookingForm) (*models.Booking, error)
}

// BookingPage is the booking form.
type BookingPage struct {
	Slot *service.BookingSlot
	Form service.BookingForm
}

// BookingDonePage confirms a reservation.
type BookingDonePage struct {
	Slot    *service.BookingSlot
	Booking *models.Booking
}

// BookingHandler serves /booking/:id/:day/:time/.
type BookingHandler struct {
	service bookingService
}

// NewBookingHandler constructs a booking handler.
func NewBookingHandler(svc bookingService) *BookingHandler {
	return &BookingHandler{service: svc}
}

// Form renders the booking form for an open slot.
func (h *BookingHandler) Form(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	response.HTML(c, http.StatusOK, "booking.html", bookingTitle, BookingPage{Slot: slot})
}

// Submit books the slot, redisplaying the form when the input is invalid.
func (h *BookingHandler) Submit(c *gin.Context) {
	slot, ok := h.slot(c)
	if !ok {
		return
	}

	var form service.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "malformed form"))
		return
	}

	booking, err := h.service.Book(c.Request.Context(), slot, form)
	if err != nil {
		if errors.Is(err, appErrors.ErrValidation) {
			response.Form(c, "booking.html", bookingTitle, BookingPage{Slot: slot, Form: form}, err)
			return
		}
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "booking_done.html", "Booking confirmed", BookingDonePage{Slot: slot, Booking: booking})
}

func (h *BookingHandler) slot(c *gin.Context) (*service.BookingSlot, bool) {
	id, ok := parseTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrTeacherNotFound)
		return nil, false
	}
	slot, err := h.service.Slot(c.Request.Context(), id, c.Param("day"), c.Param("time"))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return slot, true
}
