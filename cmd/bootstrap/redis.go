package bootstrap

import (
	"context"
	"log/slog"

	"turfbook/internal/handler/middleware"
	"turfbook/internal/infra/ratelimit"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/config"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter returns nil when rate limiting is disabled; the router then skips it.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (middleware.RateLimiter, error) {
	if !cfg.RateLimit.Enabled {
		logger.Info("rate limiting disabled")
		return nil, nil
	}

	client, err := ratelimit.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return ratelimit.NewLimiter(client, clk, cfg.RateLimit), nil
}
