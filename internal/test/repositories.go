package test

import (
	"context"
	"time"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
)

// OrderRepositoryStub allows tests to customize order persistence.
type OrderRepositoryStub struct {
	CreateFn            func(context.Context, *model.Order) (*model.Order, bool, error)
	GetByIDFn           func(context.Context, int64) (*model.Order, error)
	GetByNumberFn       func(context.Context, string) (*model.Order, error)
	ListFn              func(context.Context, model.OrderFilter) ([]model.Order, error)
	AdvanceStatusFn     func(context.Context, int64, model.OrderStatus, model.OrderStatus) (time.Time, error)
	NextDailySequenceFn func(context.Context, time.Time) (int, error)

	Created          []model.Order
	AdvanceCalls     []AdvanceCall
	AdvanceUpdatedAt time.Time
	Orders           []model.Order
	Sequence         int
	SequenceDays     []time.Time
}

// AdvanceCall records a guarded status update request.
type AdvanceCall struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = int64(len(s.Created) + 1)
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Created = append(s.Created, stored)
	return &stored, true, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	for _, o := range s.Orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) AdvanceStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (time.Time, error) {
	if s.AdvanceStatusFn != nil {
		return s.AdvanceStatusFn(ctx, orderID, from, to)
	}
	s.AdvanceCalls = append(s.AdvanceCalls, AdvanceCall{OrderID: orderID, From: from, To: to})
	if s.AdvanceUpdatedAt.IsZero() {
		return time.Now(), nil
	}
	return s.AdvanceUpdatedAt, nil
}

func (s *OrderRepositoryStub) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	if s.NextDailySequenceFn != nil {
		return s.NextDailySequenceFn(ctx, day)
	}
	s.SequenceDays = append(s.SequenceDays, day)
	s.Sequence++
	return s.Sequence, nil
}

// MenuRepositoryStub stores menu items in memory.
type MenuRepositoryStub struct {
	Items map[int64]*model.MenuItem
	Next  int64
	Err   error
}

// NewMenuRepositoryStub constructs a stub with initialized maps.
func NewMenuRepositoryStub() *MenuRepositoryStub {
	return &MenuRepositoryStub{Items: make(map[int64]*model.MenuItem), Next: 1}
}

func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *item
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	return &stored, nil
}

func (s *MenuRepositoryStub) Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[item.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *item
	s.Items[item.ID] = &stored
	return &stored, nil
}

func (s *MenuRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MenuRepositoryStub) List(ctx context.Context, filter repository.MenuFilter) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.MenuItem
	for _, item := range s.Items {
		if filter.WebsiteOnly && !item.AvailableOnWebsite {
			continue
		}
		if filter.MobileOnly && !item.AvailableOnMobile {
			continue
		}
		if filter.CategoryID != 0 && item.CategoryID != filter.CategoryID {
			continue
		}
		result = append(result, *item)
	}
	return result, nil
}

// CategoryRepositoryStub stores categories in memory.
type CategoryRepositoryStub struct {
	Categories map[int64]*model.Category
	Next       int64
	Err        error
}

// NewCategoryRepositoryStub constructs a stub with initialized maps.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[int64]*model.Category), Next: 1}
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *category
	stored.ID = s.Next
	s.Next++
	s.Categories[stored.ID] = &stored
	return &stored, nil
}

func (s *CategoryRepositoryStub) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Categories[category.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *category
	s.Categories[category.ID] = &stored
	return &stored, nil
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Categories, id)
	return nil
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Category
	for _, c := range s.Categories {
		result = append(result, *c)
	}
	return result, nil
}

// ReservationRepositoryStub stores reservations in memory.
type ReservationRepositoryStub struct {
	Reservations map[int64]*model.Reservation
	Next         int64
	Err          error

	CompleteExpiredFn func(context.Context, time.Time, int) (int64, error)
	CompletedCalls    int
}

// NewReservationRepositoryStub constructs a stub with initialized maps.
func NewReservationRepositoryStub() *ReservationRepositoryStub {
	return &ReservationRepositoryStub{Reservations: make(map[int64]*model.Reservation), Next: 1}
}

func (s *ReservationRepositoryStub) Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *r
	stored.ID = s.Next
	s.Next++
	stored.CreatedAt = time.Now()
	s.Reservations[stored.ID] = &stored
	return &stored, nil
}

func (s *ReservationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if r, ok := s.Reservations[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ReservationRepositoryStub) ListByDate(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Reservation
	for _, r := range s.Reservations {
		if r.ReservationDate.Equal(date) {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (s *ReservationRepositoryStub) BookedTableIDs(ctx context.Context, date time.Time) (map[int64]bool, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	booked := make(map[int64]bool)
	for _, r := range s.Reservations {
		if !r.ReservationDate.Equal(date) {
			continue
		}
		if r.Status == model.ReservationPending || r.Status == model.ReservationConfirmed {
			booked[r.TableID] = true
		}
	}
	return booked, nil
}

func (s *ReservationRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.ReservationStatus) error {
	if s.Err != nil {
		return s.Err
	}
	r, ok := s.Reservations[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	r.Status = status
	return nil
}

func (s *ReservationRepositoryStub) CompleteExpired(ctx context.Context, now time.Time, limit int) (int64, error) {
	s.CompletedCalls++
	if s.CompleteExpiredFn != nil {
		return s.CompleteExpiredFn(ctx, now, limit)
	}
	var n int64
	for _, r := range s.Reservations {
		if r.Status == model.ReservationConfirmed && r.ReservationDate.Before(now) {
			r.Status = model.ReservationCompleted
			n++
		}
	}
	return n, nil
}

// TableRepositoryStub serves static table metadata.
type TableRepositoryStub struct {
	Tables []model.Table
	Err    error
}

func (s *TableRepositoryStub) List(ctx context.Context) ([]model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Tables, nil
}

func (s *TableRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, t := range s.Tables {
		if t.ID == id {
			table := t
			return &table, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// StaffRepositoryStub stores staff accounts in memory.
type StaffRepositoryStub struct {
	ByEmail map[string]*model.StaffUser
	ByID    map[int64]*model.StaffUser
	Next    int64
	Err     error
}

// NewStaffRepositoryStub constructs a stub with initialized maps.
func NewStaffRepositoryStub() *StaffRepositoryStub {
	return &StaffRepositoryStub{
		ByEmail: make(map[string]*model.StaffUser),
		ByID:    make(map[int64]*model.StaffUser),
		Next:    1,
	}
}

func (s *StaffRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.StaffRole) (*model.StaffUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.StaffUser{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	s.Next++
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

func (s *StaffRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.StaffUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *StaffRepositoryStub) GetByID(ctx context.Context, id int64) (*model.StaffUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}
