package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
)

// BookingRequest carries a customer's table booking.
type BookingRequest struct {
	TableID      int64
	CustomerName string
	Phone        string
	Date         time.Time
	StartTime    string
	EndTime      string
	PartySize    int
}

// ReservationUseCase manages table bookings and derived availability.
type ReservationUseCase struct {
	reservations repository.ReservationRepository
	tables       repository.TableRepository
}

// NewReservationUseCase constructs ReservationUseCase.
func NewReservationUseCase(reservations repository.ReservationRepository, tables repository.TableRepository) *ReservationUseCase {
	return &ReservationUseCase{reservations: reservations, tables: tables}
}

// Book creates a pending reservation. A table already referenced by an
// active reservation for the date is rejected as occupied.
func (u *ReservationUseCase) Book(ctx context.Context, req BookingRequest) (*model.Reservation, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", domainErrors.ErrInvalidOrder)
	}
	if !ValidatePhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone must contain at least 9 digits", domainErrors.ErrInvalidOrder)
	}
	if req.PartySize <= 0 {
		return nil, fmt.Errorf("%w: party size must be positive", domainErrors.ErrInvalidOrder)
	}
	if req.StartTime == "" || req.EndTime == "" || req.EndTime <= req.StartTime {
		return nil, fmt.Errorf("%w: invalid time window", domainErrors.ErrInvalidOrder)
	}

	if _, err := u.tables.GetByID(ctx, req.TableID); err != nil {
		return nil, err
	}

	booked, err := u.reservations.BookedTableIDs(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if booked[req.TableID] {
		return nil, domainErrors.ErrTableOccupied
	}

	return u.reservations.Create(ctx, &model.Reservation{
		TableID:         req.TableID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		Phone:           req.Phone,
		ReservationDate: req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		PartySize:       req.PartySize,
		Status:          model.ReservationPending,
	})
}

// TablesForDate lists tables annotated with derived occupancy: a table is
// occupied iff an active reservation references it on that date.
func (u *ReservationUseCase) TablesForDate(ctx context.Context, date time.Time) ([]model.TableAvailability, error) {
	tables, err := u.tables.List(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := u.reservations.BookedTableIDs(ctx, date)
	if err != nil {
		return nil, err
	}

	result := make([]model.TableAvailability, 0, len(tables))
	for _, t := range tables {
		result = append(result, model.TableAvailability{Table: t, Occupied: booked[t.ID]})
	}
	return result, nil
}

// ListByDate returns reservations for staff review.
func (u *ReservationUseCase) ListByDate(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	return u.reservations.ListByDate(ctx, date)
}

// reservationTransitions describes legal staff actions on a booking.
var reservationTransitions = map[model.ReservationStatus][]model.ReservationStatus{
	model.ReservationPending:   {model.ReservationConfirmed, model.ReservationCancelled},
	model.ReservationConfirmed: {model.ReservationCancelled, model.ReservationCompleted},
}

// UpdateStatus applies a staff decision to a reservation.
func (u *ReservationUseCase) UpdateStatus(ctx context.Context, id int64, status model.ReservationStatus) (*model.Reservation, error) {
	res, err := u.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range reservationTransitions[res.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidStatus, res.Status, status)
	}

	if err := u.reservations.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	res.Status = status
	return res, nil
}

// CompleteExpired finalizes confirmed reservations whose window has passed.
func (u *ReservationUseCase) CompleteExpired(ctx context.Context, now time.Time, limit int) (int64, error) {
	return u.reservations.CompleteExpired(ctx, now, limit)
}
