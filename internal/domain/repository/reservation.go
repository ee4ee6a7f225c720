package repository

import (
	"context"
	"time"

	"github.com/oshxona/resto/internal/domain/model"
)

// ReservationRepository manages table bookings.
type ReservationRepository interface {
	Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.Reservation, error)
	// BookedTableIDs returns ids of tables referenced by an active
	// (pending or confirmed) reservation on the given date.
	BookedTableIDs(ctx context.Context, date time.Time) (map[int64]bool, error)
	UpdateStatus(ctx context.Context, id int64, status model.ReservationStatus) error
	// CompleteExpired marks confirmed reservations whose window ended before
	// now as completed, up to limit rows. Returns number of rows updated.
	CompleteExpired(ctx context.Context, now time.Time, limit int) (int64, error)
}

// TableRepository reads static room metadata.
type TableRepository interface {
	List(ctx context.Context) ([]model.Table, error)
	GetByID(ctx context.Context, id int64) (*model.Table, error)
}
