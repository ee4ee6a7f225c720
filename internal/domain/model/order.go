package model

import "time"

// FulfillmentMode distinguishes dine-in and courier orders.
type FulfillmentMode string

const (
	ModeDineIn   FulfillmentMode = "dine_in"
	ModeDelivery FulfillmentMode = "delivery"
)

// OrderSource records which channel submitted the order.
type OrderSource string

const (
	SourceWebsite    OrderSource = "website"
	SourceCallCenter OrderSource = "call_center"
	SourceMobile     OrderSource = "mobile"
)

// OrderItem is an immutable snapshot of a cart line at submission time.
// Price changes on the menu never affect persisted orders.
type OrderItem struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Order describes a submitted customer order. All amounts are integer so'm.
//
// Exactly one of TableNumber and DeliveryAddress is populated depending on
// the fulfillment mode.
type Order struct {
	ID             int64           `json:"id"`
	Number         string          `json:"number"`
	IdempotencyKey string          `json:"-"`
	CustomerName   string          `json:"customer_name"`
	Phone          string          `json:"phone"`
	Mode           FulfillmentMode `json:"mode"`
	TableNumber    *int            `json:"table_number,omitempty"`
	DeliveryAddr   *string         `json:"delivery_address,omitempty"`
	DeliveryLat    *float64        `json:"delivery_lat,omitempty"`
	DeliveryLng    *float64        `json:"delivery_lng,omitempty"`
	Items          []OrderItem     `json:"items"`
	Subtotal       int64           `json:"subtotal"`
	DeliveryFee    int64           `json:"delivery_fee"`
	GrandTotal     int64           `json:"grand_total"`
	Status         OrderStatus     `json:"status"`
	Source         OrderSource     `json:"source"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderFilter narrows staff order listings.
type OrderFilter struct {
	Status OrderStatus
	Source OrderSource
	From   time.Time
	To     time.Time
}
