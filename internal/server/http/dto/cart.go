package dto

import "github.com/oshxona/resto/internal/cart"

// AddCartItemRequest puts one unit of a menu item into the cart.
type AddCartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
}

// ChangeQuantityRequest adjusts a cart line by a signed delta.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// CartResponse is the session cart with derived totals.
type CartResponse struct {
	Items     []cart.Item `json:"items"`
	Total     int64       `json:"total"`
	ItemCount int         `json:"item_count"`
}

// ToCartResponse flattens a cart aggregate for the client.
func ToCartResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		Items:     c.Items(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}
