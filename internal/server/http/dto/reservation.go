package dto

// BookingRequest describes a customer table booking. The date uses the
// YYYY-MM-DD form; times are HH:MM strings within that date.
type BookingRequest struct {
	TableID      int64  `json:"table_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	PartySize    int    `json:"party_size"`
}

// ReservationStatusRequest carries a staff decision on a booking.
type ReservationStatusRequest struct {
	Status string `json:"status"`
}
