package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidOrder       = errors.New("invalid order payload")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrStatusConflict     = errors.New("order status changed concurrently")
	ErrTableOccupied      = errors.New("table is occupied for the requested date")
	ErrForbidden          = errors.New("operation not allowed for role")
)
