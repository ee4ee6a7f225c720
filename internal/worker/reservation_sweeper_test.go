package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type reservationFacadeStub struct {
	completeFn func(ctx context.Context, now time.Time, limit int) (int64, error)
	calls      atomic.Int64
}

func (s *reservationFacadeStub) CompleteExpiredReservations(ctx context.Context, now time.Time, limit int) (int64, error) {
	s.calls.Add(1)
	if s.completeFn != nil {
		return s.completeFn(ctx, now, limit)
	}
	return 0, nil
}

func TestSweeperRunsPeriodically(t *testing.T) {
	facade := &reservationFacadeStub{}
	s := NewReservationSweeper(facade, 10*time.Millisecond, 50, slog.Default())

	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(time.Second)
	for facade.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("sweeper ran %d times, want at least 2", facade.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperPassesBatchSize(t *testing.T) {
	var gotLimit atomic.Int64
	facade := &reservationFacadeStub{
		completeFn: func(ctx context.Context, now time.Time, limit int) (int64, error) {
			gotLimit.Store(int64(limit))
			return 1, nil
		},
	}
	s := NewReservationSweeper(facade, 10*time.Millisecond, 25, slog.Default())

	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(time.Second)
	for gotLimit.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never called the facade")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if gotLimit.Load() != 25 {
		t.Errorf("limit = %d, want 25", gotLimit.Load())
	}
}

func TestSweeperSurvivesFacadeError(t *testing.T) {
	facade := &reservationFacadeStub{
		completeFn: func(ctx context.Context, now time.Time, limit int) (int64, error) {
			return 0, errors.New("storage down")
		},
	}
	s := NewReservationSweeper(facade, 10*time.Millisecond, 50, slog.Default())

	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(time.Second)
	for facade.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("sweeper stopped after errors, calls = %d", facade.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperStopIsIdempotent(t *testing.T) {
	s := NewReservationSweeper(&reservationFacadeStub{}, time.Hour, 50, slog.Default())
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}

func TestSweeperDefaults(t *testing.T) {
	s := NewReservationSweeper(&reservationFacadeStub{}, 0, 0, slog.Default())
	if s.interval != time.Minute {
		t.Errorf("interval = %s, want 1m default", s.interval)
	}
	if s.batchSize != 100 {
		t.Errorf("batch size = %d, want 100 default", s.batchSize)
	}
}
