package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses. Declared as an
// interface so pgxmock can stand in for the pool in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type orderRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type reservationRepository struct {
	storage *Storage
}

type tableRepository struct {
	storage *Storage
}

type staffRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Reservations() repository.ReservationRepository {
	return &reservationRepository{storage: s}
}

func (s *Storage) Tables() repository.TableRepository {
	return &tableRepository{storage: s}
}

func (s *Storage) Staff() repository.StaffRepository {
	return &staffRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS staff_users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            sort_order INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL,
            category_id BIGINT NOT NULL REFERENCES categories(id),
            image_url TEXT NOT NULL DEFAULT '',
            available_on_website BOOLEAN NOT NULL DEFAULT TRUE,
            available_on_mobile BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            idempotency_key TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            mode TEXT NOT NULL,
            table_number INT,
            delivery_address TEXT,
            delivery_lat DOUBLE PRECISION,
            delivery_lng DOUBLE PRECISION,
            subtotal BIGINT NOT NULL,
            delivery_fee BIGINT NOT NULL DEFAULT 0,
            grand_total BIGINT NOT NULL,
            status TEXT NOT NULL,
            source TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            menu_item_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            quantity INT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS tables (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            capacity INT NOT NULL,
            hourly_rate BIGINT NOT NULL DEFAULT 0,
            floor INT NOT NULL DEFAULT 1,
            image_url TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS table_reservations (
            id SERIAL PRIMARY KEY,
            table_id BIGINT NOT NULL REFERENCES tables(id),
            customer_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            reservation_date DATE NOT NULL,
            start_time TEXT NOT NULL,
            end_time TEXT NOT NULL,
            party_size INT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_counters (
            day DATE PRIMARY KEY,
            seq INT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_date ON table_reservations(reservation_date, status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// --- OrderRepository implementation ---

const orderColumns = `id, number, idempotency_key, customer_name, phone, mode,
       table_number, delivery_address, delivery_lat, delivery_lng,
       subtotal, delivery_fee, grand_total, status, source, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	var rawStatus string
	err := row.Scan(&o.ID, &o.Number, &o.IdempotencyKey, &o.CustomerName, &o.Phone, &o.Mode,
		&o.TableNumber, &o.DeliveryAddr, &o.DeliveryLat, &o.DeliveryLng,
		&o.Subtotal, &o.DeliveryFee, &o.GrandTotal, &rawStatus, &o.Source, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}
	status, ok := model.ParseStatus(rawStatus)
	if !ok {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, rawStatus)
	}
	o.Status = status
	return nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	var created *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders
                (number, idempotency_key, customer_name, phone, mode,
                 table_number, delivery_address, delivery_lat, delivery_lng,
                 subtotal, delivery_fee, grand_total, status, source)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
            ON CONFLICT (idempotency_key) DO NOTHING
            RETURNING id, created_at, updated_at`

		row := tx.QueryRow(ctx, insertOrder,
			order.Number, order.IdempotencyKey, order.CustomerName, order.Phone, order.Mode,
			order.TableNumber, order.DeliveryAddr, order.DeliveryLat, order.DeliveryLng,
			order.Subtotal, order.DeliveryFee, order.GrandTotal, order.Status, order.Source)

		inserted := *order
		if err := row.Scan(&inserted.ID, &inserted.CreatedAt, &inserted.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Idempotent replay: same key already stored.
				return nil
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
                            VALUES ($1,$2,$3,$4,$5)`
		for _, item := range inserted.Items {
			if _, err := tx.Exec(ctx, insertItem, inserted.ID, item.MenuItemID, item.Name, item.Price, item.Quantity); err != nil {
				return err
			}
		}

		created = &inserted
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created != nil {
		return created, true, nil
	}

	existing, err := r.getBy(ctx, "idempotency_key", order.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *orderRepository) getBy(ctx context.Context, column string, value any) (*model.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s=$1`, orderColumns, column)
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, value), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.getBy(ctx, "id", id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return r.getBy(ctx, "number", number)
}

func (r *orderRepository) loadItems(ctx context.Context, o *model.Order) error {
	const query = `SELECT menu_item_id, name, price, quantity FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var (
		clauses []string
		args    []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		clauses = append(clauses, "status="+arg(filter.Status))
	}
	if filter.Source != "" {
		clauses = append(clauses, "source="+arg(filter.Source))
	}
	if !filter.From.IsZero() {
		clauses = append(clauses, "created_at >= "+arg(filter.From))
	}
	if !filter.To.IsZero() {
		clauses = append(clauses, "created_at <= "+arg(filter.To))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.loadItems(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *orderRepository) AdvanceStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (time.Time, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
	               WHERE id=$2 AND status=$3 RETURNING updated_at`
	var updatedAt time.Time
	err := r.storage.pool.QueryRow(ctx, query, to, orderID, from).Scan(&updatedAt)
	if err == nil {
		return updatedAt, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, err
	}

	// Distinguish a missing order from a lost race.
	const exists = `SELECT 1 FROM orders WHERE id=$1`
	var one int
	if err := r.storage.pool.QueryRow(ctx, exists, orderID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domainErrors.ErrNotFound
		}
		return time.Time{}, err
	}
	return time.Time{}, domainErrors.ErrStatusConflict
}

// NextDailySequence hands out order numbers from a per-day counter row.
// The upsert serializes concurrent callers on the row lock, so two
// checkouts can never observe the same value.
func (r *orderRepository) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	const query = `INSERT INTO order_counters (day, seq) VALUES ($1, 1)
	               ON CONFLICT (day) DO UPDATE SET seq = order_counters.seq + 1
	               RETURNING seq`
	var seq int
	if err := r.storage.pool.QueryRow(ctx, query, day).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

// --- MenuRepository implementation ---

const menuColumns = `id, name, description, price, category_id, image_url,
       available_on_website, available_on_mobile, created_at, updated_at`

func scanMenuItem(row pgx.Row, m *model.MenuItem) error {
	return row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.ImageURL,
		&m.AvailableOnWebsite, &m.AvailableOnMobile, &m.CreatedAt, &m.UpdatedAt)
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items
            (name, description, price, category_id, image_url, available_on_website, available_on_mobile)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	created := *item
	err := r.storage.pool.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.CategoryID, item.ImageURL,
		item.AvailableOnWebsite, item.AvailableOnMobile).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `UPDATE menu_items
        SET name=$1, description=$2, price=$3, category_id=$4, image_url=$5,
            available_on_website=$6, available_on_mobile=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING created_at, updated_at`
	updated := *item
	err := r.storage.pool.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.CategoryID, item.ImageURL,
		item.AvailableOnWebsite, item.AvailableOnMobile, item.ID).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id=$1`
	var m model.MenuItem
	if err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *menuRepository) List(ctx context.Context, filter repository.MenuFilter) ([]model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items`
	var (
		clauses []string
		args    []any
	)
	if filter.WebsiteOnly {
		clauses = append(clauses, "available_on_website")
	}
	if filter.MobileOnly {
		clauses = append(clauses, "available_on_mobile")
	}
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		clauses = append(clauses, "category_id=$"+strconv.Itoa(len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY category_id, name"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := scanMenuItem(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	const query = `INSERT INTO categories (name, sort_order) VALUES ($1,$2) RETURNING id`
	created := *category
	if err := r.storage.pool.QueryRow(ctx, query, category.Name, category.SortOrder).Scan(&created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	const query = `UPDATE categories SET name=$1, sort_order=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, category.Name, category.SortOrder, category.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	updated := *category
	return &updated, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, sort_order FROM categories ORDER BY sort_order, name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// --- ReservationRepository implementation ---

const reservationColumns = `id, table_id, customer_name, phone, reservation_date,
       start_time, end_time, party_size, status, created_at`

func scanReservation(row pgx.Row, r *model.Reservation) error {
	var rawStatus string
	err := row.Scan(&r.ID, &r.TableID, &r.CustomerName, &r.Phone, &r.ReservationDate,
		&r.StartTime, &r.EndTime, &r.PartySize, &rawStatus, &r.CreatedAt)
	if err != nil {
		return err
	}
	r.Status = model.ReservationStatus(rawStatus)
	return nil
}

func (r *reservationRepository) Create(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	const query = `INSERT INTO table_reservations
            (table_id, customer_name, phone, reservation_date, start_time, end_time, party_size, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	created := *res
	err := r.storage.pool.QueryRow(ctx, query,
		res.TableID, res.CustomerName, res.Phone, res.ReservationDate,
		res.StartTime, res.EndTime, res.PartySize, res.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM table_reservations WHERE id=$1`
	var res model.Reservation
	if err := scanReservation(r.storage.pool.QueryRow(ctx, query, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) ListByDate(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM table_reservations
              WHERE reservation_date=$1 ORDER BY start_time`
	rows, err := r.storage.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, rows.Err()
}

func (r *reservationRepository) BookedTableIDs(ctx context.Context, date time.Time) (map[int64]bool, error) {
	const query = `SELECT DISTINCT table_id FROM table_reservations
                   WHERE reservation_date=$1 AND status IN ('pending','confirmed')`
	rows, err := r.storage.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		booked[id] = true
	}
	return booked, rows.Err()
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int64, status model.ReservationStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE table_reservations SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) CompleteExpired(ctx context.Context, now time.Time, limit int) (int64, error) {
	const query = `UPDATE table_reservations SET status='completed'
                   WHERE id IN (
                       SELECT id FROM table_reservations
                       WHERE status='confirmed'
                         AND (reservation_date + end_time::time) < $1
                       LIMIT $2
                   )`
	tag, err := r.storage.pool.Exec(ctx, query, now, limit)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- TableRepository implementation ---

func (r *tableRepository) List(ctx context.Context) ([]model.Table, error) {
	const query = `SELECT id, name, capacity, hourly_rate, floor, image_url FROM tables ORDER BY floor, name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Table
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity, &t.HourlyRate, &t.Floor, &t.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *tableRepository) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	const query = `SELECT id, name, capacity, hourly_rate, floor, image_url FROM tables WHERE id=$1`
	var t model.Table
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Capacity, &t.HourlyRate, &t.Floor, &t.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// --- StaffRepository implementation ---

func (r *staffRepository) Create(ctx context.Context, email, passwordHash string, role model.StaffRole) (*model.StaffUser, error) {
	const query = `INSERT INTO staff_users (email, password_hash, role) VALUES ($1,$2,$3) RETURNING id, created_at`
	var u model.StaffUser
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *staffRepository) getBy(ctx context.Context, query string, arg any) (*model.StaffUser, error) {
	var (
		u       model.StaffUser
		rawRole string
	)
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &rawRole, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	role, ok := model.ParseRole(rawRole)
	if !ok {
		return nil, fmt.Errorf("stored role %q is unknown", rawRole)
	}
	u.Role = role
	return &u, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*model.StaffUser, error) {
	return r.getBy(ctx, `SELECT id, email, password_hash, role, created_at FROM staff_users WHERE email=$1`, email)
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*model.StaffUser, error) {
	return r.getBy(ctx, `SELECT id, email, password_hash, role, created_at FROM staff_users WHERE id=$1`, id)
}
