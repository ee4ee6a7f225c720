package usecase

import "time"

// SetNow overrides the order use case clock in tests.
func SetNow(u *OrderUseCase, fn func() time.Time) { u.now = fn }
