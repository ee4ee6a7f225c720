package di

import (
	"go.uber.org/fx"

	"github.com/oshxona/resto/internal/app"
	"github.com/oshxona/resto/internal/board"
	"github.com/oshxona/resto/internal/bus"
	"github.com/oshxona/resto/internal/cart"
	"github.com/oshxona/resto/internal/config"
	"github.com/oshxona/resto/internal/logger"
	"github.com/oshxona/resto/internal/pkg/auth"
	"github.com/oshxona/resto/internal/server/http/handlers"
	"github.com/oshxona/resto/internal/server/http/router"
	"github.com/oshxona/resto/internal/storage/postgres"
	"github.com/oshxona/resto/internal/usecase"
	"github.com/oshxona/resto/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cart.Module,
		bus.Module,
		usecase.Module,
		board.Module,
		fx.Provide(
			func(f *app.RestoFacade) handlers.RestoFacade { return f },
			func(f *app.RestoFacade) worker.ReservationFacade { return f },
		),
		router.Module,
		worker.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
