package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/server/http/dto"
)

// MenuHandler serves the public menu and admin content management.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// PublicMenu handles GET /api/menu.
func (h *MenuHandler) PublicMenu(c *gin.Context) {
	categoryID, _ := strconv.ParseInt(c.Query("category"), 10, 64)

	items, err := h.facade.PublicMenu(c.Request.Context(), categoryID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// FullMenu handles GET /api/staff/menu.
func (h *MenuHandler) FullMenu(c *gin.Context) {
	categoryID, _ := strconv.ParseInt(c.Query("category"), 10, 64)

	items, err := h.facade.FullMenu(c.Request.Context(), categoryID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles POST /api/staff/menu.
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), menuItemFromRequest(0, req))
	if err != nil {
		writeMenuError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/staff/menu/:id.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.UpdateMenuItem(c.Request.Context(), menuItemFromRequest(id, req))
	if err != nil {
		writeMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/staff/menu/:id.
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteMenuItem(c.Request.Context(), id); err != nil {
		writeMenuError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories handles GET /api/categories.
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/staff/categories.
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), &model.Category{Name: req.Name, SortOrder: req.SortOrder})
	if err != nil {
		writeMenuError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/staff/categories/:id.
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), &model.Category{ID: id, Name: req.Name, SortOrder: req.SortOrder})
	if err != nil {
		writeMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/staff/categories/:id.
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		writeMenuError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func menuItemFromRequest(id int64, req dto.MenuItemRequest) *model.MenuItem {
	return &model.MenuItem{
		ID:                 id,
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		CategoryID:         req.CategoryID,
		ImageURL:           req.ImageURL,
		AvailableOnWebsite: req.AvailableOnWebsite,
		AvailableOnMobile:  req.AvailableOnMobile,
	}
}

func writeMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidOrder):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
