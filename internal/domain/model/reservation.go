package model

import "time"

// ReservationStatus tracks the booking lifecycle.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// ActiveReservationStatuses are the statuses that make a table count as
// occupied for its date. Availability is always derived from these, never
// stored as a flag.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
}

// Reservation books a table for a date and time window.
type Reservation struct {
	ID              int64             `json:"id"`
	TableID         int64             `json:"table_id"`
	CustomerName    string            `json:"customer_name"`
	Phone           string            `json:"phone"`
	ReservationDate time.Time         `json:"reservation_date"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	PartySize       int               `json:"party_size"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Table is static room metadata.
type Table struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	HourlyRate int64  `json:"hourly_rate"`
	Floor      int    `json:"floor"`
	ImageURL   string `json:"image_url"`
}

// TableAvailability annotates a table with its derived occupancy for a date.
type TableAvailability struct {
	Table
	Occupied bool `json:"occupied"`
}
