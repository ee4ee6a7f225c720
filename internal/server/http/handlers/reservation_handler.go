package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/server/http/dto"
	"github.com/oshxona/resto/internal/usecase"
)

// ReservationHandler manages table bookings and availability.
type ReservationHandler struct {
	facade ReservationFacade
}

// NewReservationHandler constructs ReservationHandler.
func NewReservationHandler(facade ReservationFacade) *ReservationHandler {
	return &ReservationHandler{facade: facade}
}

// Tables handles GET /api/tables.
func (h *ReservationHandler) Tables(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	tables, err := h.facade.TablesForDate(c.Request.Context(), date)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// Book handles POST /api/reservations.
func (h *ReservationHandler) Book(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reservation, err := h.facade.BookTable(c.Request.Context(), usecase.BookingRequest{
		TableID:      req.TableID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PartySize:    req.PartySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrder):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrTableOccupied):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// List handles GET /api/staff/reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reservations, err := h.facade.Reservations(c.Request.Context(), date)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateStatus handles PATCH /api/staff/reservations/:id/status.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reservation, err := h.facade.UpdateReservationStatus(c.Request.Context(), id, model.ReservationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, reservation)
}
