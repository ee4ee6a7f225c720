package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ReservationFacade exposes the subset of application functionality required by the sweeper.
type ReservationFacade interface {
	CompleteExpiredReservations(ctx context.Context, now time.Time, limit int) (int64, error)
}

// ReservationSweeper periodically finalizes confirmed reservations whose
// time window has passed, releasing their tables for new bookings.
type ReservationSweeper struct {
	facade    ReservationFacade
	interval  time.Duration
	batchSize int
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReservationSweeper constructs the sweeper.
func NewReservationSweeper(facade ReservationFacade, interval time.Duration, batchSize int, logger *slog.Logger) *ReservationSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &ReservationSweeper{
		facade:    facade,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Start launches background sweeping.
func (s *ReservationSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *ReservationSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ReservationSweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReservationSweeper) sweep(ctx context.Context) {
	n, err := s.facade.CompleteExpiredReservations(ctx, time.Now(), s.batchSize)
	if err != nil {
		s.logger.Error("reservation sweep failed", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		s.logger.Info("reservations completed", slog.Int64("count", n))
	}
}
