package test

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

// AuthFacadeStub implements handlers.AuthFacade with overridable behavior.
type AuthFacadeStub struct {
	LoginFn       func(ctx context.Context, email, password string) (*model.StaffUser, string, error)
	CreateStaffFn func(ctx context.Context, email, password string, role model.StaffRole) (*model.StaffUser, error)
	ParseTokenFn  func(token string) (pkgAuth.Claims, error)
}

func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.StaffUser, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.StaffUser{ID: 1, Email: email, Role: model.RoleAdmin}, "stub-token", nil
}

func (s AuthFacadeStub) CreateStaff(ctx context.Context, email, password string, role model.StaffRole) (*model.StaffUser, error) {
	if s.CreateStaffFn != nil {
		return s.CreateStaffFn(ctx, email, password, role)
	}
	return &model.StaffUser{ID: 2, Email: email, Role: role}, nil
}

func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: model.RoleAdmin}, nil
}

// MenuFacadeStub implements handlers.MenuFacade.
type MenuFacadeStub struct {
	PublicMenuFn     func(ctx context.Context, categoryID int64) ([]model.MenuItem, error)
	FullMenuFn       func(ctx context.Context, categoryID int64) ([]model.MenuItem, error)
	CreateItemFn     func(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateItemFn     func(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	DeleteItemFn     func(ctx context.Context, id int64) error
	CategoriesFn     func(ctx context.Context) ([]model.Category, error)
	CreateCategoryFn func(ctx context.Context, category *model.Category) (*model.Category, error)
	UpdateCategoryFn func(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategoryFn func(ctx context.Context, id int64) error
}

func (s MenuFacadeStub) PublicMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	if s.PublicMenuFn != nil {
		return s.PublicMenuFn(ctx, categoryID)
	}
	return []model.MenuItem{}, nil
}

func (s MenuFacadeStub) FullMenu(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	if s.FullMenuFn != nil {
		return s.FullMenuFn(ctx, categoryID)
	}
	return []model.MenuItem{}, nil
}

func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.CreateItemFn != nil {
		return s.CreateItemFn(ctx, item)
	}
	created := *item
	created.ID = 1
	return &created, nil
}

func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, item)
	}
	return item, nil
}

func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, id int64) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, id)
	}
	return nil
}

func (s MenuFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{}, nil
}

func (s MenuFacadeStub) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, category)
	}
	created := *category
	created.ID = 1
	return &created, nil
}

func (s MenuFacadeStub) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, category)
	}
	return category, nil
}

func (s MenuFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// CartFacadeStub implements handlers.CartFacade.
type CartFacadeStub struct {
	CartFn           func(ctx context.Context, session string) (*cart.Cart, error)
	AddFn            func(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error)
	ChangeQuantityFn func(ctx context.Context, session string, menuItemID int64, delta int) (*cart.Cart, error)
	RemoveFn         func(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error)
	ClearFn          func(ctx context.Context, session string) error
}

func (s CartFacadeStub) Cart(ctx context.Context, session string) (*cart.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, session)
	}
	return cart.New(), nil
}

func (s CartFacadeStub) AddToCart(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, session, menuItemID)
	}
	c := cart.New()
	c.AddItem(menuItemID, "item", 1000)
	return c, nil
}

func (s CartFacadeStub) ChangeCartQuantity(ctx context.Context, session string, menuItemID int64, delta int) (*cart.Cart, error) {
	if s.ChangeQuantityFn != nil {
		return s.ChangeQuantityFn(ctx, session, menuItemID, delta)
	}
	return cart.New(), nil
}

func (s CartFacadeStub) RemoveFromCart(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, session, menuItemID)
	}
	return cart.New(), nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context, session string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, session)
	}
	return nil
}

// OrderFacadeStub implements handlers.OrderFacade.
type OrderFacadeStub struct {
	CheckoutFn func(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error)
	TrackFn    func(ctx context.Context, number string) (*model.Order, error)
	OrdersFn   func(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	AdvanceFn  func(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error)
	QuoteFn    func(lat, lng float64, subtotal int64) (float64, int64)
}

func (s OrderFacadeStub) Checkout(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, req)
	}
	return &model.Order{ID: 1, Number: "ORD_20250101_001", Status: model.OrderStatusNew}, true, nil
}

func (s OrderFacadeStub) TrackOrder(ctx context.Context, number string) (*model.Order, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, number)
	}
	return &model.Order{ID: 1, Number: number, Status: model.OrderStatusNew}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{}, nil
}

func (s OrderFacadeStub) AdvanceOrder(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID, target)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPreparing}, nil
}

func (s OrderFacadeStub) QuoteDelivery(lat, lng float64, subtotal int64) (float64, int64) {
	if s.QuoteFn != nil {
		return s.QuoteFn(lat, lng, subtotal)
	}
	return 0, 0
}

// ReservationFacadeStub implements handlers.ReservationFacade.
type ReservationFacadeStub struct {
	BookFn         func(ctx context.Context, req usecase.BookingRequest) (*model.Reservation, error)
	TablesFn       func(ctx context.Context, date time.Time) ([]model.TableAvailability, error)
	ReservationsFn func(ctx context.Context, date time.Time) ([]model.Reservation, error)
	UpdateStatusFn func(ctx context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error)
}

func (s ReservationFacadeStub) BookTable(ctx context.Context, req usecase.BookingRequest) (*model.Reservation, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, req)
	}
	return &model.Reservation{ID: 1, TableID: req.TableID, Status: model.ReservationPending}, nil
}

func (s ReservationFacadeStub) TablesForDate(ctx context.Context, date time.Time) ([]model.TableAvailability, error) {
	if s.TablesFn != nil {
		return s.TablesFn(ctx, date)
	}
	return []model.TableAvailability{}, nil
}

func (s ReservationFacadeStub) Reservations(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	if s.ReservationsFn != nil {
		return s.ReservationsFn(ctx, date)
	}
	return []model.Reservation{}, nil
}

func (s ReservationFacadeStub) UpdateReservationStatus(ctx context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Reservation{ID: id, Status: status}, nil
}

// BoardFacadeStub implements handlers.BoardFacade.
type BoardFacadeStub struct {
	SnapshotFn  func(ctx context.Context, view board.View) (board.Snapshot, error)
	SubscribeFn func(h bus.Handler) func()
}

func (s BoardFacadeStub) BoardSnapshot(ctx context.Context, view board.View) (board.Snapshot, error) {
	if s.SnapshotFn != nil {
		return s.SnapshotFn(ctx, view)
	}
	return board.Snapshot{View: view}, nil
}

func (s BoardFacadeStub) SubscribeEvents(h bus.Handler) func() {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(h)
	}
	return func() {}
}

// RestoFacadeStub aggregates all facade stubs for router-level tests.
type RestoFacadeStub struct {
	AuthFacadeStub
	MenuFacadeStub
	CartFacadeStub
	OrderFacadeStub
	ReservationFacadeStub
	BoardFacadeStub
}
