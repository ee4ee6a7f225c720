package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oshxona/resto/internal/bus"
	"github.com/oshxona/resto/internal/cart"
	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/pricing"
	"github.com/oshxona/resto/internal/test"
	"github.com/oshxona/resto/internal/usecase"
)

func intPtr(v int) *int         { return &v }
func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }

func newOrderFixture(t *testing.T) (*usecase.OrderUseCase, *test.OrderRepositoryStub, cart.Store, *bus.LocalBus) {
	t.Helper()
	repo := &test.OrderRepositoryStub{}
	carts := cart.NewMemoryStore()
	events := bus.NewLocalBus()
	u := usecase.NewOrderUseCase(repo, carts, testPolicy(), testOrigin(), events)
	usecase.SetNow(u, func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC) })
	return u, repo, carts, events
}

func testPolicy() pricing.Policy {
	return pricing.Policy{FreeDistanceKm: 3, FreeOrderTotal: 200000, PerKmRate: 3000}
}

func testOrigin() pricing.Coordinate {
	return pricing.Coordinate{Lat: 41.311081, Lng: 69.240562}
}

func seedCart(t *testing.T, carts cart.Store, session string) {
	t.Helper()
	c := cart.New()
	c.AddItem(1, "Osh", 45000)
	c.AddItem(1, "Osh", 45000)
	c.AddItem(2, "Lagman", 38000)
	if err := carts.Save(context.Background(), session, c); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func validDineIn(session string) usecase.CheckoutRequest {
	return usecase.CheckoutRequest{
		Session:      session,
		CustomerName: "Aziz Karimov",
		Phone:        "+998901234567",
		Mode:         model.ModeDineIn,
		TableNumber:  intPtr(5),
		Source:       model.SourceWebsite,
	}
}

func TestCheckoutDineIn(t *testing.T) {
	u, repo, carts, _ := newOrderFixture(t)
	seedCart(t, carts, "s1")

	order, created, err := u.Checkout(context.Background(), validDineIn("s1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true")
	}
	if order.Subtotal != 128000 {
		t.Errorf("subtotal = %d, want 128000", order.Subtotal)
	}
	if order.DeliveryFee != 0 {
		t.Errorf("dine-in fee = %d, want 0", order.DeliveryFee)
	}
	if order.GrandTotal != 128000 {
		t.Errorf("grand total = %d, want 128000", order.GrandTotal)
	}
	if order.Status != model.OrderStatusNew {
		t.Errorf("status = %s, want %s", order.Status, model.OrderStatusNew)
	}
	if !strings.HasPrefix(order.Number, "ORD_20250314_") {
		t.Errorf("number = %q, want ORD_20250314_ prefix", order.Number)
	}
	if len(repo.Created) != 1 {
		t.Fatalf("repo stored %d orders, want 1", len(repo.Created))
	}

	c, err := carts.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("reload cart: %v", err)
	}
	if !c.Empty() {
		t.Error("cart should be cleared after checkout")
	}
}

func TestCheckoutEmptyCartRejectedBeforeWrite(t *testing.T) {
	u, repo, _, _ := newOrderFixture(t)

	_, _, err := u.Checkout(context.Background(), validDineIn("missing"))
	if !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("error = %v, want ErrEmptyCart", err)
	}
	if len(repo.Created) != 0 {
		t.Error("empty cart must not reach the repository")
	}
}

func TestCheckoutValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CheckoutRequest)
	}{
		{"missing name", func(r *usecase.CheckoutRequest) { r.CustomerName = "  " }},
		{"short phone", func(r *usecase.CheckoutRequest) { r.Phone = "12345" }},
		{"dine-in without table", func(r *usecase.CheckoutRequest) { r.TableNumber = nil }},
		{"dine-in with address", func(r *usecase.CheckoutRequest) { r.DeliveryAddr = strPtr("Chilonzor 9") }},
		{"unknown mode", func(r *usecase.CheckoutRequest) { r.Mode = "drive_through" }},
		{"unknown source", func(r *usecase.CheckoutRequest) { r.Source = "fax" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, repo, carts, _ := newOrderFixture(t)
			seedCart(t, carts, "s1")

			req := validDineIn("s1")
			tt.mutate(&req)

			_, _, err := u.Checkout(context.Background(), req)
			if !errors.Is(err, domainErrors.ErrInvalidOrder) {
				t.Fatalf("error = %v, want ErrInvalidOrder", err)
			}
			if len(repo.Created) != 0 {
				t.Error("invalid request must not reach the repository")
			}

			c, _ := carts.Get(context.Background(), "s1")
			if c.Empty() {
				t.Error("cart must survive a rejected checkout")
			}
		})
	}
}

func TestCheckoutDeliveryFee(t *testing.T) {
	u, _, carts, _ := newOrderFixture(t)
	seedCart(t, carts, "s1")

	// Roughly 11 km north of the configured origin.
	req := usecase.CheckoutRequest{
		Session:      "s1",
		CustomerName: "Dilnoza",
		Phone:        "998935551122",
		Mode:         model.ModeDelivery,
		DeliveryAddr: strPtr("Yunusobod 19"),
		DeliveryLat:  f64Ptr(41.411081),
		DeliveryLng:  f64Ptr(69.240562),
		Source:       model.SourceMobile,
	}

	order, created, err := u.Checkout(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true")
	}
	if order.DeliveryFee <= 0 {
		t.Errorf("fee = %d, want positive for a distant address", order.DeliveryFee)
	}
	if order.GrandTotal != order.Subtotal+order.DeliveryFee {
		t.Errorf("grand total %d != subtotal %d + fee %d", order.GrandTotal, order.Subtotal, order.DeliveryFee)
	}
}

func TestCheckoutDeliveryWithoutCoordsHasNoFee(t *testing.T) {
	u, _, carts, _ := newOrderFixture(t)
	seedCart(t, carts, "s1")

	req := usecase.CheckoutRequest{
		Session:      "s1",
		CustomerName: "Dilnoza",
		Phone:        "998935551122",
		Mode:         model.ModeDelivery,
		DeliveryAddr: strPtr("Yunusobod 19"),
		Source:       model.SourceCallCenter,
	}

	order, _, err := u.Checkout(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.DeliveryFee != 0 {
		t.Errorf("fee = %d, want 0 without coordinates", order.DeliveryFee)
	}
}

func TestCheckoutNumbersStayDistinctAndDated(t *testing.T) {
	u, repo, carts, _ := newOrderFixture(t)

	numbers := make(map[string]bool)
	for _, session := range []string{"s1", "s2", "s3"} {
		seedCart(t, carts, session)
		order, _, err := u.Checkout(context.Background(), validDineIn(session))
		if err != nil {
			t.Fatalf("checkout %s: %v", session, err)
		}
		if numbers[order.Number] {
			t.Fatalf("number %q handed out twice", order.Number)
		}
		numbers[order.Number] = true
	}

	if len(repo.SequenceDays) != 3 {
		t.Fatalf("sequence allocations = %d, want 3", len(repo.SequenceDays))
	}
	for i, day := range repo.SequenceDays {
		if got := day.Format("20060102"); got != "20250314" {
			t.Errorf("allocation %d used day %s, want 20250314", i, got)
		}
	}
	if !numbers["ORD_20250314_001"] || !numbers["ORD_20250314_003"] {
		t.Errorf("numbers = %v, want sequential ORD_20250314_ values", numbers)
	}
}

func TestCheckoutIdempotentReplay(t *testing.T) {
	u, repo, carts, events := newOrderFixture(t)
	seedCart(t, carts, "s1")

	existing := model.Order{ID: 42, Number: "ORD_20250314_001", Status: model.OrderStatusPreparing}
	repo.CreateFn = func(ctx context.Context, o *model.Order) (*model.Order, bool, error) {
		return &existing, false, nil
	}

	var published int
	events.Subscribe(func(ctx context.Context, ev bus.Event) { published++ })

	req := validDineIn("s1")
	req.IdempotencyKey = "retry-key"

	order, created, err := u.Checkout(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("replay must report created=false")
	}
	if order.ID != 42 {
		t.Errorf("order id = %d, want stored 42", order.ID)
	}
	if published != 0 {
		t.Errorf("replay published %d events, want 0", published)
	}
}

func TestCheckoutPublishesCreatedEvent(t *testing.T) {
	u, _, carts, events := newOrderFixture(t)
	seedCart(t, carts, "s1")

	var got []bus.Event
	events.Subscribe(func(ctx context.Context, ev bus.Event) { got = append(got, ev) })

	if _, _, err := u.Checkout(context.Background(), validDineIn("s1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Type != bus.EventOrderCreated {
		t.Fatalf("events = %+v, want one order_created", got)
	}
}

func TestAdvanceDefaultsToNext(t *testing.T) {
	u, repo, _, events := newOrderFixture(t)
	repo.Orders = []model.Order{{ID: 7, Status: model.OrderStatusNew}}

	var got []bus.Event
	events.Subscribe(func(ctx context.Context, ev bus.Event) { got = append(got, ev) })

	order, err := u.Advance(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPreparing {
		t.Errorf("status = %s, want preparing", order.Status)
	}
	if len(repo.AdvanceCalls) != 1 {
		t.Fatalf("advance calls = %d, want 1", len(repo.AdvanceCalls))
	}
	call := repo.AdvanceCalls[0]
	if call.From != model.OrderStatusNew || call.To != model.OrderStatusPreparing {
		t.Errorf("guarded update %s -> %s, want new -> preparing", call.From, call.To)
	}
	if len(got) != 1 || got[0].Type != bus.EventOrderStatusChanged {
		t.Fatalf("events = %+v, want one order_status_changed", got)
	}
}

func TestAdvanceCarriesFreshTimestamp(t *testing.T) {
	u, repo, _, events := newOrderFixture(t)
	stale := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	fresh := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	repo.Orders = []model.Order{{ID: 7, Status: model.OrderStatusNew, UpdatedAt: stale}}
	repo.AdvanceUpdatedAt = fresh

	var got []bus.Event
	events.Subscribe(func(ctx context.Context, ev bus.Event) { got = append(got, ev) })

	order, err := u.Advance(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !order.UpdatedAt.Equal(fresh) {
		t.Errorf("returned updated_at = %v, want %v", order.UpdatedAt, fresh)
	}
	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if !got[0].Order.UpdatedAt.Equal(fresh) {
		t.Errorf("published event carries updated_at %v, want %v", got[0].Order.UpdatedAt, fresh)
	}
}

func TestAdvanceCourierBranch(t *testing.T) {
	u, repo, _, _ := newOrderFixture(t)
	repo.Orders = []model.Order{{ID: 7, Status: model.OrderStatusReady, Mode: model.ModeDelivery}}

	order, err := u.Advance(context.Background(), 7, model.OrderStatusPickedUp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPickedUp {
		t.Errorf("status = %s, want picked_up", order.Status)
	}
}

func TestAdvanceRejectsBackwardAndSkips(t *testing.T) {
	tests := []struct {
		name   string
		from   model.OrderStatus
		target model.OrderStatus
	}{
		{"backward", model.OrderStatusReady, model.OrderStatusNew},
		{"skip", model.OrderStatusNew, model.OrderStatusReady},
		{"terminal", model.OrderStatusDelivered, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, repo, _, _ := newOrderFixture(t)
			repo.Orders = []model.Order{{ID: 7, Status: tt.from}}

			_, err := u.Advance(context.Background(), 7, tt.target)
			if !errors.Is(err, domainErrors.ErrInvalidStatus) {
				t.Fatalf("error = %v, want ErrInvalidStatus", err)
			}
			if len(repo.AdvanceCalls) != 0 {
				t.Error("illegal transition must not reach the repository")
			}
		})
	}
}

func TestAdvanceSurfacesConflict(t *testing.T) {
	u, repo, _, events := newOrderFixture(t)
	repo.Orders = []model.Order{{ID: 7, Status: model.OrderStatusNew}}
	repo.AdvanceStatusFn = func(ctx context.Context, id int64, from, to model.OrderStatus) (time.Time, error) {
		return time.Time{}, domainErrors.ErrStatusConflict
	}

	var published int
	events.Subscribe(func(ctx context.Context, ev bus.Event) { published++ })

	_, err := u.Advance(context.Background(), 7, "")
	if !errors.Is(err, domainErrors.ErrStatusConflict) {
		t.Fatalf("error = %v, want ErrStatusConflict", err)
	}
	if published != 0 {
		t.Error("conflicting advance must not publish an event")
	}
}

func TestTrackUnknownNumber(t *testing.T) {
	u, _, _, _ := newOrderFixture(t)

	_, err := u.Track(context.Background(), "ORD_19990101_001")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
