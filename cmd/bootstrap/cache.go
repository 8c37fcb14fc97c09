package bootstrap

import (
	"context"

	"majestic-manor/internal/infra/cache"
	"majestic-manor/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewCache,
			fx.As(new(cache.Cache)),
		),
	),
)

// NewCache returns a disabled (nil) cache when no Redis address is configured.
func NewCache(lc fx.Lifecycle, cfg config.Config) *cache.Redis {
	r := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return r.Close()
		},
	})

	return r
}
