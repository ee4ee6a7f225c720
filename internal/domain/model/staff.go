package model

import "time"

// StaffRole is the single source of truth for dashboard authorization.
type StaffRole string

const (
	RoleAdmin      StaffRole = "admin"
	RoleKitchen    StaffRole = "kitchen"
	RoleCallCenter StaffRole = "call_center"
)

// ParseRole validates a stored role string.
func ParseRole(raw string) (StaffRole, bool) {
	switch r := StaffRole(raw); r {
	case RoleAdmin, RoleKitchen, RoleCallCenter:
		return r, true
	}
	return "", false
}

// StaffUser is an internal dashboard account.
type StaffUser struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         StaffRole
	CreatedAt    time.Time
}
