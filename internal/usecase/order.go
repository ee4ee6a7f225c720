package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/oshxona/resto/internal/bus"
	"github.com/oshxona/resto/internal/cart"
	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
	"github.com/oshxona/resto/internal/pricing"
)

// CheckoutRequest carries everything needed to submit an order.
type CheckoutRequest struct {
	Session        string
	IdempotencyKey string
	CustomerName   string
	Phone          string
	Mode           model.FulfillmentMode
	TableNumber    *int
	DeliveryAddr   *string
	DeliveryLat    *float64
	DeliveryLng    *float64
	Source         model.OrderSource
}

// OrderUseCase encapsulates order submission and lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	carts  cart.Store
	policy pricing.Policy
	origin pricing.Coordinate
	events bus.Bus
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts cart.Store, policy pricing.Policy, origin pricing.Coordinate, events bus.Bus) *OrderUseCase {
	return &OrderUseCase{
		orders: orders,
		carts:  carts,
		policy: policy,
		origin: origin,
		events: events,
		now:    time.Now,
	}
}

func (u *OrderUseCase) validate(req CheckoutRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", domainErrors.ErrInvalidOrder)
	}
	if !ValidatePhone(req.Phone) {
		return fmt.Errorf("%w: phone must contain at least 9 digits", domainErrors.ErrInvalidOrder)
	}
	switch req.Mode {
	case model.ModeDineIn:
		if req.TableNumber == nil {
			return fmt.Errorf("%w: table number is required for dine-in", domainErrors.ErrInvalidOrder)
		}
		if req.DeliveryAddr != nil {
			return fmt.Errorf("%w: delivery address not allowed for dine-in", domainErrors.ErrInvalidOrder)
		}
	case model.ModeDelivery:
		if req.DeliveryAddr == nil || strings.TrimSpace(*req.DeliveryAddr) == "" {
			return fmt.Errorf("%w: delivery address is required", domainErrors.ErrInvalidOrder)
		}
		if req.TableNumber != nil {
			return fmt.Errorf("%w: table number not allowed for delivery", domainErrors.ErrInvalidOrder)
		}
	default:
		return fmt.Errorf("%w: unknown fulfillment mode %q", domainErrors.ErrInvalidOrder, req.Mode)
	}
	switch req.Source {
	case model.SourceWebsite, model.SourceCallCenter, model.SourceMobile:
	default:
		return fmt.Errorf("%w: unknown source %q", domainErrors.ErrInvalidOrder, req.Source)
	}
	return nil
}

// Checkout validates the request, snapshots the session cart into a
// persisted order, and clears the cart. Validation failures happen before
// any write; a store failure leaves the cart untouched. Resubmission with
// the same idempotency key returns the stored order with created=false.
func (u *OrderUseCase) Checkout(ctx context.Context, req CheckoutRequest) (*model.Order, bool, error) {
	if err := u.validate(req); err != nil {
		return nil, false, err
	}

	c, err := u.carts.Get(ctx, req.Session)
	if err != nil {
		return nil, false, err
	}
	if c.Empty() {
		return nil, false, domainErrors.ErrEmptyCart
	}

	subtotal := c.Total()

	var fee int64
	var lat, lng *float64
	if req.Mode == model.ModeDelivery {
		lat, lng = req.DeliveryLat, req.DeliveryLng
		dest := pricing.Coordinate{}
		if lat != nil && lng != nil {
			dest = pricing.Coordinate{Lat: *lat, Lng: *lng}
			fee = u.policy.Fee(pricing.Distance(u.origin, dest), subtotal)
		}
	}

	// One clock source for both the counter day and the number prefix, so
	// they cannot disagree around midnight.
	day := u.now().UTC()
	seq, err := u.orders.NextDailySequence(ctx, day)
	if err != nil {
		return nil, false, err
	}

	key := req.IdempotencyKey
	if key == "" {
		key = newIdempotencyKey()
	}

	items := make([]model.OrderItem, 0, len(c.Lines))
	for _, line := range c.Items() {
		items = append(items, model.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	order := &model.Order{
		Number:         fmt.Sprintf("ORD_%s_%03d", day.Format("20060102"), seq),
		IdempotencyKey: key,
		CustomerName:   strings.TrimSpace(req.CustomerName),
		Phone:          req.Phone,
		Mode:           req.Mode,
		TableNumber:    req.TableNumber,
		DeliveryAddr:   req.DeliveryAddr,
		DeliveryLat:    lat,
		DeliveryLng:    lng,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		GrandTotal:     subtotal + fee,
		Status:         model.OrderStatusNew,
		Source:         req.Source,
	}

	stored, created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, false, err
	}

	if created {
		_ = u.events.Publish(ctx, bus.Event{Type: bus.EventOrderCreated, Order: *stored})
	}

	// The order is durable either way; dropping the cart is safe.
	_ = u.carts.Delete(ctx, req.Session)

	return stored, created, nil
}

// Track returns an order by its public number.
func (u *OrderUseCase) Track(ctx context.Context, number string) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, number)
}

// List returns orders for staff dashboards.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// Advance moves an order one step forward. The next status is computed
// from the current one; target overrides the default only where the
// progression branches (ready -> picked_up). A concurrent transition
// surfaces as ErrStatusConflict rather than a duplicate step.
func (u *OrderUseCase) Advance(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	to := target
	if to == "" {
		to = order.Status.Next()
	}
	if to == "" {
		return nil, fmt.Errorf("%w: %s is terminal", domainErrors.ErrInvalidStatus, order.Status)
	}
	if !model.CanTransition(order.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidStatus, order.Status, to)
	}

	updatedAt, err := u.orders.AdvanceStatus(ctx, orderID, order.Status, to)
	if err != nil {
		return nil, err
	}

	order.Status = to
	order.UpdatedAt = updatedAt
	_ = u.events.Publish(ctx, bus.Event{Type: bus.EventOrderStatusChanged, Order: *order})

	return order, nil
}

func newIdempotencyKey() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
