package handlers

import (
	"context"
	"time"

	"github.com/oshxona/resto/internal/board"
	"github.com/oshxona/resto/internal/bus"
	"github.com/oshxona/resto/internal/cart"
	"github.com/oshxona/resto/internal/domain/model"
	pkgAuth "github.com/oshxona/resto/internal/pkg/auth"
	"github.com/oshxona/resto/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.StaffUser, string, error)
	CreateStaff(ctx context.Context, email, password string, role model.StaffRole) (*model.StaffUser, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// MenuFacade exposes menu browsing and admin content management.
type MenuFacade interface {
	PublicMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error)
	FullMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CartFacade manages session carts.
type CartFacade interface {
	Cart(ctx context.Context, session string) (*cart.Cart, error)
	AddToCart(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error)
	ChangeCartQuantity(ctx context.Context, session string, menuItemID int64, delta int) (*cart.Cart, error)
	RemoveFromCart(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error)
	ClearCart(ctx context.Context, session string) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error)
	TrackOrder(ctx context.Context, number string) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	AdvanceOrder(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error)
	QuoteDelivery(lat, lng float64, subtotal int64) (distanceKm float64, fee int64)
}

// ReservationFacade covers bookings and derived table availability.
type ReservationFacade interface {
	BookTable(ctx context.Context, req usecase.BookingRequest) (*model.Reservation, error)
	TablesForDate(ctx context.Context, date time.Time) ([]model.TableAvailability, error)
	Reservations(ctx context.Context, date time.Time) ([]model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error)
}

// BoardFacade serves dashboard snapshots and the live event feed.
type BoardFacade interface {
	BoardSnapshot(ctx context.Context, view board.View) (board.Snapshot, error)
	SubscribeEvents(h bus.Handler) (unsubscribe func())
}

// RestoFacade aggregates the full set of operations used across handlers.
type RestoFacade interface {
	AuthFacade
	MenuFacade
	CartFacade
	OrderFacade
	ReservationFacade
	BoardFacade
}
