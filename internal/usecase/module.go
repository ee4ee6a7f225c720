package usecase

import (
	"go.uber.org/fx"

	"github.com/oshxona/resto/internal/config"
	"github.com/oshxona/resto/internal/pricing"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(newPolicy, newOrigin),
	fx.Provide(
		NewAuthUseCase,
		NewOrderUseCase,
		NewCartUseCase,
		NewMenuUseCase,
		NewReservationUseCase,
	),
)

func newPolicy(cfg *config.Config) pricing.Policy {
	return pricing.Policy{
		FreeDistanceKm: cfg.FreeDistanceKm,
		FreeOrderTotal: cfg.FreeOrderTotal,
		PerKmRate:      cfg.PerKmRate,
	}
}

func newOrigin(cfg *config.Config) pricing.Coordinate {
	return pricing.Coordinate{Lat: cfg.OriginLat, Lng: cfg.OriginLng}
}
