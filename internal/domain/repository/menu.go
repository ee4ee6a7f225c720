package repository

import (
	"context"

	"github.com/oshxona/resto/internal/domain/model"
)

// MenuFilter narrows menu listings to a channel and category.
type MenuFilter struct {
	WebsiteOnly bool
	MobileOnly  bool
	CategoryID  int64
}

// MenuRepository manages admin-owned menu content.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	List(ctx context.Context, filter MenuFilter) ([]model.MenuItem, error)
}

// CategoryRepository manages menu categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Category, error)
}
