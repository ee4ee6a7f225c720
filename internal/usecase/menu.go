package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
)

// MenuUseCase covers the public menu listing and admin content management.
type MenuUseCase struct {
	menu       repository.MenuRepository
	categories repository.CategoryRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository, categories repository.CategoryRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu, categories: categories}
}

// PublicMenu lists items visible on the website, optionally scoped to a
// category.
func (u *MenuUseCase) PublicMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return u.menu.List(ctx, repository.MenuFilter{WebsiteOnly: true, CategoryID: categoryID})
}

// FullMenu lists every item regardless of channel availability.
func (u *MenuUseCase) FullMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return u.menu.List(ctx, repository.MenuFilter{CategoryID: categoryID})
}

func validateMenuItem(item *model.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrInvalidOrder)
	}
	if item.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domainErrors.ErrInvalidOrder)
	}
	if item.CategoryID == 0 {
		return fmt.Errorf("%w: category is required", domainErrors.ErrInvalidOrder)
	}
	return nil
}

// CreateItem adds a dish to the menu.
func (u *MenuUseCase) CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	return u.menu.Create(ctx, item)
}

// UpdateItem replaces a dish's fields.
func (u *MenuUseCase) UpdateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	return u.menu.Update(ctx, item)
}

// DeleteItem removes a dish.
func (u *MenuUseCase) DeleteItem(ctx context.Context, id int64) error {
	return u.menu.Delete(ctx, id)
}

// Categories lists menu categories in display order.
func (u *MenuUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// CreateCategory adds a category.
func (u *MenuUseCase) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrInvalidOrder)
	}
	return u.categories.Create(ctx, category)
}

// UpdateCategory renames or reorders a category.
func (u *MenuUseCase) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrInvalidOrder)
	}
	return u.categories.Update(ctx, category)
}

// DeleteCategory removes a category. Categories still referenced by menu
// items cannot be deleted.
func (u *MenuUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}
