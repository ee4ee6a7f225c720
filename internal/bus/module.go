package bus

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/oshxona/resto/internal/config"
)

// Module wires the order event bus. RabbitMQ when configured, in-process
// otherwise.
var Module = fx.Options(
	fx.Provide(newBus),
	fx.Invoke(registerLifecycle),
)

type busParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBus(p busParams) (Bus, error) {
	if p.Config.RabbitURL == "" {
		p.Logger.Info("no broker configured, using in-process event bus")
		return NewLocalBus(), nil
	}
	return DialRabbit(p.Ctx, p.Config.RabbitURL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, b Bus) {
	rabbit, ok := b.(*RabbitBus)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			rabbit.Close()
			return nil
		},
	})
}
