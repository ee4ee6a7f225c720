package board

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the dashboard board to the fx container.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(registerBoard),
)

func registerBoard(lc fx.Lifecycle, b *Board) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return b.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return b.Stop(ctx)
		},
	})
}
