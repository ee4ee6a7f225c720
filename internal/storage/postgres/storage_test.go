package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func TestOrderCreateInsertsOrderAndItems(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
		).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(10), int64(4), "Lagman", int64(45000), 2).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	addr := "Chilonzor 5"
	order := &model.Order{
		Number:         "ORD_20260828_001",
		IdempotencyKey: "key-1",
		CustomerName:   "Aziz",
		Phone:          "+998901234567",
		Mode:           model.ModeDelivery,
		DeliveryAddr:   &addr,
		Items:          []model.OrderItem{{MenuItemID: 4, Name: "Lagman", Price: 45000, Quantity: 2}},
		Subtotal:       90000,
		DeliveryFee:    0,
		GrandTotal:     90000,
		Status:         model.OrderStatusNew,
		Source:         model.SourceWebsite,
	}

	created, isNew, err := storage.Orders().Create(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isNew {
		t.Fatal("expected order to be newly created")
	}
	if created.ID != 10 {
		t.Fatalf("unexpected id %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderAdvanceStatusGuardedUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusPreparing, int64(10), model.OrderStatusNew).
		WillReturnRows(pgxmockv3.NewRows([]string{"updated_at"}).AddRow(now))

	updatedAt, err := storage.Orders().AdvanceStatus(context.Background(), 10, model.OrderStatusNew, model.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updatedAt.Equal(now) {
		t.Fatalf("updated_at = %v, want %v", updatedAt, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderAdvanceStatusConflictWhenRowUnchanged(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusPreparing, int64(10), model.OrderStatusNew).
		WillReturnRows(pgxmockv3.NewRows([]string{"updated_at"}))
	mock.ExpectQuery("SELECT 1 FROM orders").
		WithArgs(int64(10)).
		WillReturnRows(pgxmockv3.NewRows([]string{"?column?"}).AddRow(1))

	_, err := storage.Orders().AdvanceStatus(context.Background(), 10, model.OrderStatusNew, model.OrderStatusPreparing)
	if err != domainErrors.ErrStatusConflict {
		t.Fatalf("expected ErrStatusConflict, got %v", err)
	}
}

func TestOrderAdvanceStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusPreparing, int64(99), model.OrderStatusNew).
		WillReturnRows(pgxmockv3.NewRows([]string{"updated_at"}))
	mock.ExpectQuery("SELECT 1 FROM orders").
		WithArgs(int64(99)).
		WillReturnRows(pgxmockv3.NewRows([]string{"?column?"}))

	_, err := storage.Orders().AdvanceStatus(context.Background(), 99, model.OrderStatusNew, model.OrderStatusPreparing)
	if err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNextDailySequenceAllocatesFromCounter(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO order_counters").
		WithArgs(day).
		WillReturnRows(pgxmockv3.NewRows([]string{"seq"}).AddRow(5))

	seq, err := storage.Orders().NextDailySequence(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq != 5 {
		t.Fatalf("seq = %d, want 5", seq)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMenuListWebsiteFilter(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	rows := pgxmockv3.NewRows([]string{
		"id", "name", "description", "price", "category_id", "image_url",
		"available_on_website", "available_on_mobile", "created_at", "updated_at",
	}).AddRow(int64(1), "Plov", "", int64(40000), int64(2), "", true, true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM menu_items WHERE available_on_website").
		WillReturnRows(rows)

	items, err := storage.Menu().List(context.Background(), repository.MenuFilter{WebsiteOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Plov" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestBookedTableIDs(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT DISTINCT table_id FROM table_reservations").
		WithArgs(date).
		WillReturnRows(pgxmockv3.NewRows([]string{"table_id"}).AddRow(int64(3)).AddRow(int64(7)))

	booked, err := storage.Reservations().BookedTableIDs(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !booked[3] || !booked[7] || len(booked) != 2 {
		t.Fatalf("unexpected booked set %v", booked)
	}
}

func TestCompleteExpiredReportsRowCount(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectExec("UPDATE table_reservations SET status='completed'").
		WithArgs(now, 64).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 2))

	n, err := storage.Reservations().CompleteExpired(context.Background(), now, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}

func TestStaffCreateDuplicateEmail(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO staff_users").
		WithArgs("chef@resto.uz", "hash", model.RoleKitchen).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Staff().Create(context.Background(), "chef@resto.uz", "hash", model.RoleKitchen)
	if err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestHealthCheckPingsPool(t *testing.T) {
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()
	storage := &Storage{pool: mock, logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
