package dto

// CheckoutRequest describes an order submission. Exactly one of
// table_number and delivery_address must be set, matching the mode.
type CheckoutRequest struct {
	CustomerName    string   `json:"customer_name"`
	Phone           string   `json:"phone"`
	Mode            string   `json:"mode"`
	TableNumber     *int     `json:"table_number,omitempty"`
	DeliveryAddress *string  `json:"delivery_address,omitempty"`
	DeliveryLat     *float64 `json:"delivery_lat,omitempty"`
	DeliveryLng     *float64 `json:"delivery_lng,omitempty"`
	Source          string   `json:"source"`
}

// AdvanceRequest optionally names the target status where the progression
// branches. Empty means "one step forward".
type AdvanceRequest struct {
	Status string `json:"status"`
}

// QuoteRequest asks for a delivery fee preview before checkout.
type QuoteRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Subtotal int64   `json:"subtotal"`
}

// QuoteResponse carries the computed distance and fee.
type QuoteResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Fee        int64   `json:"fee"`
}
