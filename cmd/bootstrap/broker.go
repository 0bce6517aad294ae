package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking-gateway/internal/infra/broker"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects on start. A broker that is down at start is
// redialed on the first publish, so startup does not fail on it.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	if !cfg.Broker.Enabled() {
		logger.Warn("RabbitMQ not configured, booking events are only logged")
		return broker.NopPublisher{}
	}

	p := broker.NewRabbitPublisher(cfg.Broker)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Connect(ctx); err != nil {
				logger.Warn("RabbitMQ unavailable at startup", "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
