package board

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/oshxona/resto/internal/bus"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
)

// View selects which dashboard a snapshot is built for. Each dashboard
// shows a different slice of the status progression.
type View string

const (
	ViewKitchen    View = "kitchen"
	ViewCallCenter View = "call_center"
	ViewAdmin      View = "admin"
)

// viewColumns fixes the column order per dashboard. The kitchen stops at
// ready; courier statuses only matter to the call center and admin.
var viewColumns = map[View][]model.OrderStatus{
	ViewKitchen: {
		model.OrderStatusNew,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
	},
	ViewCallCenter: {
		model.OrderStatusNew,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
		model.OrderStatusPickedUp,
		model.OrderStatusOnTheWay,
		model.OrderStatusDelivered,
	},
	ViewAdmin: {
		model.OrderStatusNew,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
		model.OrderStatusPickedUp,
		model.OrderStatusOnTheWay,
		model.OrderStatusDelivered,
	},
}

// ParseView validates a dashboard name.
func ParseView(raw string) (View, bool) {
	switch v := View(raw); v {
	case ViewKitchen, ViewCallCenter, ViewAdmin:
		return v, true
	}
	return "", false
}

// Column groups the orders currently sitting in one status.
type Column struct {
	Status model.OrderStatus `json:"status"`
	Orders []model.Order     `json:"orders"`
}

// Snapshot is a point-in-time kanban for one dashboard.
type Snapshot struct {
	View      View      `json:"view"`
	Columns   []Column  `json:"columns"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Board maintains an in-memory copy of today's orders, kept current by
// applying bus events as upserts keyed by order id. Events carry the full
// order document, so an out-of-order or duplicated delivery converges to
// the same state. When the feed is interrupted the board falls back to a
// full refetch instead of reconciling deltas.
type Board struct {
	orders repository.OrderRepository
	events bus.Bus
	logger *slog.Logger
	now    func() time.Time

	mu          sync.RWMutex
	byID        map[int64]model.Order
	refreshedAt time.Time

	unsubscribe func()
}

// New constructs a Board. Call Start to load state and attach to the bus.
func New(orders repository.OrderRepository, events bus.Bus, logger *slog.Logger) *Board {
	return &Board{
		orders: orders,
		events: events,
		logger: logger,
		now:    time.Now,
		byID:   make(map[int64]model.Order),
	}
}

// Start loads today's orders and subscribes to the event feed.
func (b *Board) Start(ctx context.Context) error {
	if err := b.Refresh(ctx); err != nil {
		return err
	}
	b.unsubscribe = b.events.Subscribe(b.apply)
	return nil
}

// Stop detaches from the event feed.
func (b *Board) Stop(ctx context.Context) error {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	return nil
}

// Refresh replaces the in-memory state with today's orders from storage.
func (b *Board) Refresh(ctx context.Context) error {
	orders, err := b.orders.List(ctx, model.OrderFilter{From: b.startOfDay()})
	if err != nil {
		return err
	}

	fresh := make(map[int64]model.Order, len(orders))
	for _, o := range orders {
		fresh[o.ID] = o
	}

	b.mu.Lock()
	b.byID = fresh
	b.refreshedAt = b.now()
	b.mu.Unlock()
	return nil
}

// apply merges one event into the board. Upsert by id: a created order
// inserts, a status change replaces the stored document wholesale.
func (b *Board) apply(ctx context.Context, ev bus.Event) {
	if ev.Order.ID == 0 {
		// A malformed event means the feed can no longer be trusted.
		if err := b.Refresh(ctx); err != nil {
			b.logger.Error("board refresh after bad event", "error", err)
		}
		return
	}

	b.mu.Lock()
	b.byID[ev.Order.ID] = ev.Order
	b.mu.Unlock()
}

// Snapshot assembles the kanban for one dashboard. Orders inside a column
// are oldest first, matching how staff work the queue. Day rollover drops
// yesterday's orders on the next snapshot after midnight.
func (b *Board) Snapshot(ctx context.Context, view View) (Snapshot, error) {
	b.mu.RLock()
	stale := b.refreshedAt.Before(b.startOfDay())
	b.mu.RUnlock()
	if stale {
		if err := b.Refresh(ctx); err != nil {
			return Snapshot{}, err
		}
	}

	statuses, ok := viewColumns[view]
	if !ok {
		statuses = viewColumns[ViewAdmin]
	}

	buckets := make(map[model.OrderStatus][]model.Order, len(statuses))

	b.mu.RLock()
	for _, o := range b.byID {
		buckets[o.Status] = append(buckets[o.Status], o)
	}
	updatedAt := b.refreshedAt
	b.mu.RUnlock()

	columns := make([]Column, 0, len(statuses))
	for _, status := range statuses {
		orders := buckets[status]
		sort.Slice(orders, func(i, j int) bool {
			if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
				return orders[i].ID < orders[j].ID
			}
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		})
		if orders == nil {
			orders = []model.Order{}
		}
		columns = append(columns, Column{Status: status, Orders: orders})
	}

	return Snapshot{View: view, Columns: columns, UpdatedAt: updatedAt}, nil
}

func (b *Board) startOfDay() time.Time {
	now := b.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
