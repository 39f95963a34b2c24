package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roysiu-gh/restam/internal/model"
	"github.com/roysiu-gh/restam/internal/service"
	"github.com/roysiu-gh/restam/internal/timetable"
)

// PublicHandler exposes read-only views that need no authentication:
// the venue document, the menu, the slot grid and table occupancy.
// These endpoints sit behind the response-cache middleware.
type PublicHandler struct {
	Svc *service.Reservations
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(svc *service.Reservations) *PublicHandler {
	if svc == nil {
		panic("nil service passed to NewPublicHandler")
	}
	return &PublicHandler{Svc: svc}
}

// GetVenue handles GET /v1/venue.
func (h *PublicHandler) GetVenue(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Venue())
}

// GetMenu handles GET /v1/menu.
func (h *PublicHandler) GetMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Menu())
}

// momentView is one row of the slot grid.
type momentView struct {
	Moment int    `json:"moment"`
	Time   string `json:"time"`
}

// GetMoments handles GET /v1/schedule/moments: every slot of the
// operating window with its wall-clock start time.
func (h *PublicHandler) GetMoments(c echo.Context) error {
	idx := h.Svc.Index()
	out := make([]momentView, 0, idx.Count())
	for _, m := range idx.Moments() {
		out = append(out, momentView{Moment: m, Time: idx.MomentToTime(m).String()})
	}
	return c.JSON(http.StatusOK, out)
}

// occupancyEntry is one occupied table at a moment.  TableRef cannot be
// a JSON map key, so occupancy is rendered as a list.
type occupancyEntry struct {
	FloorID     string `json:"floor_id"`
	TableNumber int    `json:"table_number"`
	BookingID   int64  `json:"booking_id"`
}

// GetOccupancy handles GET /v1/schedule/occupancy with either a
// ?moment=N or a ?time=HHMM query parameter.
func (h *PublicHandler) GetOccupancy(c echo.Context) error {
	var (
		occ map[timetable.TableRef]int64
		err error
	)
	switch {
	case c.QueryParam("moment") != "":
		var moment int
		if moment, err = strconv.Atoi(c.QueryParam("moment")); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid moment"})
		}
		occ, err = h.Svc.OccupancyAt(moment)
	case c.QueryParam("time") != "":
		var hhmm int
		if hhmm, err = strconv.Atoi(c.QueryParam("time")); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time"})
		}
		occ, err = h.Svc.OccupancyAtTime(model.ClockTime(hhmm))
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "moment or time query parameter required"})
	}
	if err != nil {
		if errors.Is(err, timetable.ErrMomentOutOfRange) ||
			errors.Is(err, timetable.ErrTimeOutOfRange) ||
			errors.Is(err, timetable.ErrTimeMisaligned) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	out := make([]occupancyEntry, 0, len(occ))
	for ref, id := range occ {
		out = append(out, occupancyEntry{FloorID: ref.FloorID, TableNumber: ref.TableNumber, BookingID: id})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FloorID != out[j].FloorID {
			return out[i].FloorID < out[j].FloorID
		}
		return out[i].TableNumber < out[j].TableNumber
	})
	return c.JSON(http.StatusOK, out)
}
