package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is unset. Attempts are then
// kept in process memory and the room catalog is not cached.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logger.Warn("Redis not configured, using in-memory attempt store")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	logger.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}
