package app

import (
	"context"
	"time"

	"github.com/oshxona/resto/internal/board"
	"github.com/oshxona/resto/internal/bus"
	"github.com/oshxona/resto/internal/cart"
	"github.com/oshxona/resto/internal/domain/model"
	pkgAuth "github.com/oshxona/resto/internal/pkg/auth"
	"github.com/oshxona/resto/internal/pricing"
	"github.com/oshxona/resto/internal/usecase"
)

// RestoFacade aggregates the use cases behind a single surface consumed by
// the HTTP layer and the background sweeper.
type RestoFacade struct {
	auth         *usecase.AuthUseCase
	menu         *usecase.MenuUseCase
	carts        *usecase.CartUseCase
	orders       *usecase.OrderUseCase
	reservations *usecase.ReservationUseCase
	board        *board.Board
	events       bus.Bus
	policy       pricing.Policy
	origin       pricing.Coordinate
}

// NewRestoFacade constructs the application facade.
func NewRestoFacade(
	auth *usecase.AuthUseCase,
	menu *usecase.MenuUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	reservations *usecase.ReservationUseCase,
	b *board.Board,
	events bus.Bus,
	policy pricing.Policy,
	origin pricing.Coordinate,
) *RestoFacade {
	return &RestoFacade{
		auth:         auth,
		menu:         menu,
		carts:        carts,
		orders:       orders,
		reservations: reservations,
		board:        b,
		events:       events,
		policy:       policy,
		origin:       origin,
	}
}

func (f *RestoFacade) Login(ctx context.Context, email, password string) (*model.StaffUser, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *RestoFacade) CreateStaff(ctx context.Context, email, password string, role model.StaffRole) (*model.StaffUser, error) {
	return f.auth.CreateStaff(ctx, email, password, role)
}

func (f *RestoFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *RestoFacade) PublicMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return f.menu.PublicMenu(ctx, categoryID)
}

func (f *RestoFacade) FullMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return f.menu.FullMenu(ctx, categoryID)
}

func (f *RestoFacade) CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	return f.menu.CreateItem(ctx, item)
}

func (f *RestoFacade) UpdateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	return f.menu.UpdateItem(ctx, item)
}

func (f *RestoFacade) DeleteMenuItem(ctx context.Context, id int64) error {
	return f.menu.DeleteItem(ctx, id)
}

func (f *RestoFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.menu.Categories(ctx)
}

func (f *RestoFacade) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.menu.CreateCategory(ctx, category)
}

func (f *RestoFacade) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.menu.UpdateCategory(ctx, category)
}

func (f *RestoFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.menu.DeleteCategory(ctx, id)
}

func (f *RestoFacade) Cart(ctx context.Context, session string) (*cart.Cart, error) {
	return f.carts.Get(ctx, session)
}

func (f *RestoFacade) AddToCart(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
	return f.carts.Add(ctx, session, menuItemID)
}

func (f *RestoFacade) ChangeCartQuantity(ctx context.Context, session string, menuItemID int64, delta int) (*cart.Cart, error) {
	return f.carts.UpdateQuantity(ctx, session, menuItemID, delta)
}

func (f *RestoFacade) RemoveFromCart(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
	return f.carts.Remove(ctx, session, menuItemID)
}

func (f *RestoFacade) ClearCart(ctx context.Context, session string) error {
	return f.carts.Clear(ctx, session)
}

func (f *RestoFacade) Checkout(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error) {
	return f.orders.Checkout(ctx, req)
}

func (f *RestoFacade) TrackOrder(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.Track(ctx, number)
}

func (f *RestoFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *RestoFacade) AdvanceOrder(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	return f.orders.Advance(ctx, orderID, target)
}

func (f *RestoFacade) QuoteDelivery(lat, lng float64, subtotal int64) (float64, int64) {
	q := f.policy.QuoteFor(f.origin, pricing.Coordinate{Lat: lat, Lng: lng}, subtotal)
	return q.DistanceKm, q.Fee
}

func (f *RestoFacade) BookTable(ctx context.Context, req usecase.BookingRequest) (*model.Reservation, error) {
	return f.reservations.Book(ctx, req)
}

func (f *RestoFacade) TablesForDate(ctx context.Context, date time.Time) ([]model.TableAvailability, error) {
	return f.reservations.TablesForDate(ctx, date)
}

func (f *RestoFacade) Reservations(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	return f.reservations.ListByDate(ctx, date)
}

func (f *RestoFacade) UpdateReservationStatus(ctx context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error) {
	return f.reservations.UpdateStatus(ctx, id, status)
}

func (f *RestoFacade) CompleteExpiredReservations(ctx context.Context, now time.Time, limit int) (int64, error) {
	return f.reservations.CompleteExpired(ctx, now, limit)
}

func (f *RestoFacade) BoardSnapshot(ctx context.Context, view board.View) (board.Snapshot, error) {
	return f.board.Snapshot(ctx, view)
}

func (f *RestoFacade) SubscribeEvents(h bus.Handler) func() {
	return f.events.Subscribe(h)
}
