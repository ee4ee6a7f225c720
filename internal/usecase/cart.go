package usecase

import (
	"context"

	"github.com/oshxona/resto/internal/cart"
	"github.com/oshxona/resto/internal/domain/repository"
)

// CartUseCase manages session carts. Prices always come from the menu at
// add time, never from the client.
type CartUseCase struct {
	carts cart.Store
	menu  repository.MenuRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts cart.Store, menu repository.MenuRepository) *CartUseCase {
	return &CartUseCase{carts: carts, menu: menu}
}

// Get returns the cart for the session, empty when unknown.
func (u *CartUseCase) Get(ctx context.Context, session string) (*cart.Cart, error) {
	return u.carts.Get(ctx, session)
}

// Add puts one unit of the menu item into the session cart, merging with
// an existing line for the same item.
func (u *CartUseCase) Add(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
	item, err := u.menu.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	c, err := u.carts.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	c.AddItem(item.ID, item.Name, item.Price)

	if err := u.carts.Save(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity adjusts a line by delta; the line disappears at zero.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, session string, menuItemID int64, delta int) (*cart.Cart, error) {
	c, err := u.carts.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(menuItemID, delta)

	if err := u.carts.Save(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove drops a line unconditionally.
func (u *CartUseCase) Remove(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
	c, err := u.carts.Get(ctx, session)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(menuItemID)

	if err := u.carts.Save(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the session cart.
func (u *CartUseCase) Clear(ctx context.Context, session string) error {
	return u.carts.Delete(ctx, session)
}
