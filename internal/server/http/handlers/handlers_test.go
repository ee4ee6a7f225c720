package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oshxona/resto/internal/cart"
	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/server/http/dto"
	"github.com/oshxona/resto/internal/server/http/middleware"
	testhelpers "github.com/oshxona/resto/internal/test"
	"github.com/oshxona/resto/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, target string, handler gin.HandlerFunc, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartSessionMintsToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)

	session := CartSession(c)
	if session == "" {
		t.Fatal("expected a minted session token")
	}
	if got := c.Writer.Header().Get(CartSessionHeader); got != session {
		t.Fatalf("response header = %q, want %q", got, session)
	}
}

func TestCartSessionEchoesExisting(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	c.Request.Header.Set(CartSessionHeader, "abc123")

	if session := CartSession(c); session != "abc123" {
		t.Fatalf("session = %q, want abc123", session)
	}
}

func TestCurrentStaff(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if id, _ := CurrentStaff(c); id != 0 {
		t.Fatalf("expected 0 when not set, got %d", id)
	}

	c.Set(middleware.StaffIDContextKey, int64(42))
	c.Set(middleware.StaffRoleContextKey, model.RoleKitchen)
	id, role := CurrentStaff(c)
	if id != 42 || role != model.RoleKitchen {
		t.Fatalf("got (%d, %s), want (42, kitchen)", id, role)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@resto.uz", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login",
		NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var got dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Token != "stub-token" || got.Role != "admin" {
		t.Fatalf("response = %+v, want stub token and admin role", got)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "bad credentials",
			facade: testhelpers.AuthFacadeStub{LoginFn: func(ctx context.Context, email, password string) (*model.StaffUser, string, error) {
				return nil, "", domainErrors.ErrInvalidCredentials
			}},
			body:   mustJSON(t, dto.LoginRequest{Email: "a@b.c", Password: "x"}),
			status: http.StatusUnauthorized,
		},
		{
			name: "storage error",
			facade: testhelpers.AuthFacadeStub{LoginFn: func(ctx context.Context, email, password string) (*model.StaffUser, string, error) {
				return nil, "", errors.New("pool down")
			}},
			body:   mustJSON(t, dto.LoginRequest{Email: "a@b.c", Password: "x"}),
			status: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login",
				NewAuthHandler(tt.facade).Login, tt.body, nil)
			if resp.Code != tt.status {
				t.Fatalf("status = %d, want %d", resp.Code, tt.status)
			}
		})
	}
}

func TestAuthHandlerCreateStaffConflict(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{CreateStaffFn: func(ctx context.Context, email, password string, role model.StaffRole) (*model.StaffUser, error) {
		return nil, domainErrors.ErrAlreadyExists
	}}
	body := mustJSON(t, dto.CreateStaffRequest{Email: "x@resto.uz", Password: "p", Role: "kitchen"})
	resp := performRequest(t, http.MethodPost, "/users", "/users",
		NewAuthHandler(facade).CreateStaff, body, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.Code)
	}
}

func TestCartHandlerAddUnknownItem(t *testing.T) {
	facade := testhelpers.CartFacadeStub{AddFn: func(ctx context.Context, session string, menuItemID int64) (*cart.Cart, error) {
		return nil, domainErrors.ErrNotFound
	}}
	body := mustJSON(t, dto.AddCartItemRequest{MenuItemID: 99})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items",
		NewCartHandler(facade).Add, body, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestCartHandlerAddReturnsCart(t *testing.T) {
	body := mustJSON(t, dto.AddCartItemRequest{MenuItemID: 4})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items",
		NewCartHandler(testhelpers.CartFacadeStub{}).Add, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if resp.Header().Get(CartSessionHeader) == "" {
		t.Fatal("expected session header on cart response")
	}

	var got dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ItemCount != 1 {
		t.Fatalf("item count = %d, want 1", got.ItemCount)
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	var gotKey string
	var gotSession string
	facade := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error) {
		gotKey = req.IdempotencyKey
		gotSession = req.Session
		return &model.Order{ID: 1, Number: "ORD_20250314_001"}, true, nil
	}}

	body := mustJSON(t, dto.CheckoutRequest{CustomerName: "Aziz", Phone: "998901234567", Mode: "dine_in", Source: "website"})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders",
		NewOrderHandler(facade).Checkout, body, map[string]string{
			IdempotencyKeyHeader: "retry-1",
			CartSessionHeader:    "sess-1",
		})
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.Code)
	}
	if gotKey != "retry-1" {
		t.Errorf("idempotency key = %q, want retry-1", gotKey)
	}
	if gotSession != "sess-1" {
		t.Errorf("session = %q, want sess-1", gotSession)
	}
}

func TestOrderHandlerCheckoutStatuses(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		status int
	}{
		{
			name: "idempotent replay",
			facade: testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error) {
				return &model.Order{ID: 1}, false, nil
			}},
			status: http.StatusOK,
		},
		{
			name: "validation failure",
			facade: testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error) {
				return nil, false, domainErrors.ErrInvalidOrder
			}},
			status: http.StatusUnprocessableEntity,
		},
		{
			name: "empty cart",
			facade: testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, bool, error) {
				return nil, false, domainErrors.ErrEmptyCart
			}},
			status: http.StatusBadRequest,
		},
	}
	body := mustJSON(t, dto.CheckoutRequest{CustomerName: "Aziz", Phone: "998901234567", Mode: "dine_in", Source: "website"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", "/orders",
				NewOrderHandler(tt.facade).Checkout, body, nil)
			if resp.Code != tt.status {
				t.Fatalf("status = %d, want %d", resp.Code, tt.status)
			}
		})
	}
}

func TestOrderHandlerTrackNotFound(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{TrackFn: func(ctx context.Context, number string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:number", "/orders/ORD_19990101_001",
		NewOrderHandler(facade).Track, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestOrderHandlerQuote(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{QuoteFn: func(lat, lng float64, subtotal int64) (float64, int64) {
		return 10, 30000
	}}
	body := mustJSON(t, dto.QuoteRequest{Lat: 41.4, Lng: 69.2, Subtotal: 128000})
	resp := performRequest(t, http.MethodPost, "/delivery/quote", "/delivery/quote",
		NewOrderHandler(facade).Quote, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var got dto.QuoteResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.DistanceKm != 10 || got.Fee != 30000 {
		t.Fatalf("quote = %+v, want 10km / 30000", got)
	}
}

func TestOrderHandlerAdvance(t *testing.T) {
	tests := []struct {
		name   string
		target string
		facade testhelpers.OrderFacadeStub
		status int
	}{
		{name: "default next", status: http.StatusOK},
		{name: "explicit target", target: "picked_up", status: http.StatusOK},
		{
			name: "conflict",
			facade: testhelpers.OrderFacadeStub{AdvanceFn: func(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
				return nil, domainErrors.ErrStatusConflict
			}},
			status: http.StatusConflict,
		},
		{
			name: "illegal transition",
			facade: testhelpers.OrderFacadeStub{AdvanceFn: func(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
				return nil, domainErrors.ErrInvalidStatus
			}},
			status: http.StatusUnprocessableEntity,
		},
		{name: "unknown status", target: "teleported", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			if tt.target != "" {
				body = mustJSON(t, dto.AdvanceRequest{Status: tt.target})
			}
			resp := performRequest(t, http.MethodPost, "/orders/:id/advance", "/orders/7/advance",
				NewOrderHandler(tt.facade).Advance, body, nil)
			if resp.Code != tt.status {
				t.Fatalf("status = %d, want %d", resp.Code, tt.status)
			}
		})
	}
}

func TestOrderHandlerAdvanceAcceptsLocalizedStatus(t *testing.T) {
	var gotTarget model.OrderStatus
	facade := testhelpers.OrderFacadeStub{AdvanceFn: func(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
		gotTarget = target
		return &model.Order{ID: orderID, Status: target}, nil
	}}
	body := mustJSON(t, dto.AdvanceRequest{Status: "tayyor"})
	resp := performRequest(t, http.MethodPost, "/orders/:id/advance", "/orders/7/advance",
		NewOrderHandler(facade).Advance, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if gotTarget != model.OrderStatusReady {
		t.Fatalf("target = %s, want canonical ready", gotTarget)
	}
}

func TestReservationHandlerBookConflict(t *testing.T) {
	facade := testhelpers.ReservationFacadeStub{BookFn: func(ctx context.Context, req usecase.BookingRequest) (*model.Reservation, error) {
		return nil, domainErrors.ErrTableOccupied
	}}
	body := mustJSON(t, dto.BookingRequest{TableID: 2, CustomerName: "Malika", Phone: "998977778899", Date: "2025-06-01", StartTime: "18:00", EndTime: "20:00", PartySize: 4})
	resp := performRequest(t, http.MethodPost, "/reservations", "/reservations",
		NewReservationHandler(facade).Book, body, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.Code)
	}
}

func TestReservationHandlerBadDate(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/tables", "/tables?date=junk",
		NewReservationHandler(testhelpers.ReservationFacadeStub{}).Tables, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestBoardHandlerSnapshot(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/board", "/board?view=kitchen",
		NewBoardHandler(testhelpers.BoardFacadeStub{}).Snapshot, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/board", "/board?view=warehouse",
		NewBoardHandler(testhelpers.BoardFacadeStub{}).Snapshot, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d for unknown view, want 400", resp.Code)
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return body
}
