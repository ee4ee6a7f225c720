package worker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/oshxona/resto/internal/config"
)

// Module provides the background reservation sweeper to the fx container.
var Module = fx.Options(
	fx.Provide(newSweeper),
	fx.Invoke(registerSweeper),
)

func newSweeper(facade ReservationFacade, cfg *config.Config, logger *slog.Logger) *ReservationSweeper {
	return NewReservationSweeper(facade, cfg.SweepInterval, cfg.SweepBatchSize, logger)
}

func registerSweeper(lc fx.Lifecycle, s *ReservationSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
}
