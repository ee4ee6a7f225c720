package cart

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/oshxona/resto/internal/config"
)

// Module wires the session cart store. Redis is used when configured,
// otherwise carts live in process memory.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) Store {
	if p.Config.RedisAddress == "" {
		return NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         p.Config.RedisAddress,
		Password:     p.Config.RedisPassword,
		DB:           p.Config.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return NewRedisStore(client, p.Config.CartTTL)
}
