package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/server/http/dto"
	"github.com/oshxona/resto/internal/usecase"
)

// IdempotencyKeyHeader lets clients retry checkout safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderHandler manages checkout, tracking, and the staff order lifecycle.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	session := CartSession(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, created, err := h.facade.Checkout(c.Request.Context(), usecase.CheckoutRequest{
		Session:        session,
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Mode:           model.FulfillmentMode(req.Mode),
		TableNumber:    req.TableNumber,
		DeliveryAddr:   req.DeliveryAddress,
		DeliveryLat:    req.DeliveryLat,
		DeliveryLng:    req.DeliveryLng,
		Source:         model.OrderSource(req.Source),
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrder):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, order)
}

// Track handles GET /api/orders/:number.
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.facade.TrackOrder(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// Quote handles POST /api/delivery/quote.
func (h *OrderHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	distance, fee := h.facade.QuoteDelivery(req.Lat, req.Lng, req.Subtotal)
	c.JSON(http.StatusOK, dto.QuoteResponse{DistanceKm: distance, Fee: fee})
}

// List handles GET /api/staff/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		Status: model.OrderStatus(c.Query("status")),
		Source: model.OrderSource(c.Query("source")),
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.To = to
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// Advance handles POST /api/staff/orders/:id/advance.
func (h *OrderHandler) Advance(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.AdvanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	var target model.OrderStatus
	if req.Status != "" {
		parsed, ok := model.ParseStatus(req.Status)
		if !ok {
			c.Status(http.StatusBadRequest)
			return
		}
		target = parsed
	}

	order, err := h.facade.AdvanceOrder(c.Request.Context(), orderID, target)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrStatusConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
