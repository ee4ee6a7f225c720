package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/server/http/dto"
)

// CartHandler manages the anonymous session cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	session := CartSession(c)

	cart, err := h.facade.Cart(c.Request.Context(), session)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	session := CartSession(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuItemID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.AddToCart(c.Request.Context(), session, req.MenuItemID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// ChangeQuantity handles PATCH /api/cart/items/:id.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	session := CartSession(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.ChangeCartQuantity(c.Request.Context(), session, itemID, req.Delta)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// Remove handles DELETE /api/cart/items/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	session := CartSession(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.RemoveFromCart(c.Request.Context(), session, itemID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	session := CartSession(c)

	if err := h.facade.ClearCart(c.Request.Context(), session); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
