package components

import (
	"context"
	"log/slog"

	"hotel-booking-gateway/internal/infra/attempt"
	"hotel-booking-gateway/internal/infra/cache"
	"hotel-booking-gateway/internal/infra/hotelapi"
	"hotel-booking-gateway/internal/infra/payment"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RepositoryModule provides the adapters to the hotel API, the payment
// provider and Redis.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewHotelAPIClient,
			fx.As(new(commands.AvailabilityOracle)),
			fx.As(new(commands.ReservationAPI)),
			fx.As(new(commands.PaymentVerifier)),
			fx.As(new(queries.RoomCatalog)),
		),
		NewPaymentBridge,
		NewAttemptStore,
		func(s commands.AttemptStore) queries.AttemptReader { return s },
		NewRoomCache,
	),
)

func NewHotelAPIClient(cfg config.Config) *hotelapi.Client {
	return hotelapi.NewClient(cfg.Upstream)
}

// NewPaymentBridge warms the checkout script on start. A failure here is
// retried on the first hand-off.
func NewPaymentBridge(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.PaymentBridge {
	bridge := payment.NewFlutterwaveBridge(cfg)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), cfg.Payment.LoadTimeout)
				defer cancel()
				if err := bridge.EnsureLoaded(ctx); err != nil {
					logger.Warn("Payment checkout script not reachable at startup", "error", err)
				}
			}()
			return nil
		},
	})
	return bridge
}

func NewAttemptStore(rdb *redis.Client, cfg config.Config, clk clock.Clock) commands.AttemptStore {
	if rdb == nil {
		return attempt.NewMemoryStore(cfg.Redis, clk)
	}
	return attempt.NewRedisStore(rdb, cfg.Redis)
}

func NewRoomCache(rdb *redis.Client, cfg config.Config) queries.RoomCache {
	if rdb == nil {
		return cache.NopRoomCache{}
	}
	return cache.NewRedisRoomCache(rdb, cfg.Redis)
}
