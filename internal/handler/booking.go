package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roysiu-gh/restam/internal/ledger"
	"github.com/roysiu-gh/restam/internal/model"
	"github.com/roysiu-gh/restam/internal/service"
	"github.com/roysiu-gh/restam/internal/timetable"
)

// BookingHandler serves the staff-facing booking endpoints: admitting
// parties, mutating their orders and notes, and driving the lifecycle.
// All methods assume JWT authentication and role checks have been
// performed by middleware.  The reservation service does its own
// locking, so handlers never coordinate with each other.
type BookingHandler struct {
	Svc *service.Reservations
}

// NewBookingHandler constructs a BookingHandler.  The service must be
// non-nil.
func NewBookingHandler(svc *service.Reservations) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc}
}

// Create handles POST /v1/bookings.  The body is a service.PartyRequest;
// on success it returns 201 with the stored booking.
func (h *BookingHandler) Create(c echo.Context) error {
	var req service.PartyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.Svc.AddParty(c.Request().Context(), req)
	if err != nil {
		return bookingError(c, err)
	}
	b, err := h.Svc.GetParty(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking vanished after create"})
	}
	return c.JSON(http.StatusCreated, b)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.Svc.GetParty(id)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// List handles GET /v1/bookings.  Without a status query parameter it
// returns every booking in creation order; with ?status=pending (or
// completed/cancelled) it returns the matching filtered view keyed by
// id.
func (h *BookingHandler) List(c echo.Context) error {
	raw := c.QueryParam("status")
	if raw == "" {
		return c.JSON(http.StatusOK, h.Svc.All())
	}
	status, err := model.ParseStatus(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
	}
	var view map[int64]model.Booking
	switch status {
	case model.StatusPending:
		view = h.Svc.Pending()
	case model.StatusComplete:
		view = h.Svc.Completed()
	case model.StatusCancelled:
		view = h.Svc.Cancelled()
	}
	return c.JSON(http.StatusOK, view)
}

// ModifyMeals handles PATCH /v1/bookings/:id/meals.  The body maps meal
// ids to signed quantity deltas.
func (h *BookingHandler) ModifyMeals(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		Meals map[string]int `json:"meals"`
	}
	if err := c.Bind(&body); err != nil || len(body.Meals) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "meals delta required"})
	}
	b, err := h.Svc.ModifyMeals(id, body.Meals)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// OverwriteNotes handles PUT /v1/bookings/:id/notes.  Mode "w" replaces
// the notes, "a" appends; mode defaults to "w".
func (h *BookingHandler) OverwriteNotes(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		Notes string `json:"notes"`
		Mode  string `json:"mode"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Mode == "" {
		body.Mode = "w"
	}
	b, err := h.Svc.OverwriteNotes(id, body.Notes, body.Mode)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Complete handles POST /v1/bookings/:id/complete.
func (h *BookingHandler) Complete(c echo.Context) error {
	return h.lifecycle(c, h.Svc.CompleteParty)
}

// Cancel handles POST /v1/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c echo.Context) error {
	return h.lifecycle(c, h.Svc.CancelParty)
}

// Reactivate handles POST /v1/bookings/:id/reactivate.
func (h *BookingHandler) Reactivate(c echo.Context) error {
	return h.lifecycle(c, h.Svc.ReactivateParty)
}

// lifecycle shares the id-parse / run / respond shape of the three
// status endpoints.  On success it returns the updated booking.
func (h *BookingHandler) lifecycle(c echo.Context, op func(ctx context.Context, id int64) error) error {
	id, err := bookingID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	if err := op(c.Request().Context(), id); err != nil {
		return bookingError(c, err)
	}
	b, err := h.Svc.GetParty(id)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func bookingID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// bookingError maps core errors onto HTTP statuses: malformed input is
// 400, unknown ids are 404, scheduling conflicts are 409, everything
// else is 500.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ledger.ErrUnknownBooking):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, service.ErrNoTableAvailable),
		errors.Is(err, service.ErrReactivateConflict),
		errors.Is(err, timetable.ErrTableOccupied):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidParty),
		errors.Is(err, service.ErrUnknownMeal),
		errors.Is(err, timetable.ErrTimeOutOfRange),
		errors.Is(err, timetable.ErrTimeMisaligned),
		errors.Is(err, timetable.ErrMomentOutOfRange),
		errors.Is(err, model.ErrNegativeQuantity),
		errors.Is(err, model.ErrInvalidMode),
		errors.Is(err, model.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
