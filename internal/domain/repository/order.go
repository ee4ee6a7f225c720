package repository

import (
	"context"
	"time"

	"github.com/oshxona/resto/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order with its line items. When an order with the
	// same idempotency key already exists, the stored order is returned with
	// created=false instead of inserting a duplicate.
	Create(ctx context.Context, order *model.Order) (*model.Order, bool, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	// AdvanceStatus performs a guarded single-field update: the row is
	// touched only while its status still equals from, and the new
	// updated_at is returned. A zero row count means a concurrent
	// transition won and is reported as a conflict.
	AdvanceStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (time.Time, error)
	// NextDailySequence atomically allocates the next order number for the
	// given day. Concurrent callers always receive distinct values; gaps
	// from failed checkouts are acceptable.
	NextDailySequence(ctx context.Context, day time.Time) (int, error)
}
