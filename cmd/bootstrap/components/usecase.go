package components

import (
	"context"
	"log/slog"

	"hotel-booking-gateway/internal/domain/booking"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/pkg/config"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(StartSweeper),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultFeeCalculator,
		fx.As(new(booking.FeeCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewVerificationCommands,
		commands.NewLedgerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewAttemptQueries,
		queries.NewPaymentAttemptQueries,
	),
)

// StartSweeper runs the pending-payment sweep for the life of the app.
func StartSweeper(lc fx.Lifecycle, cmds commands.LedgerCommands, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting pending payment sweeper",
				"interval", cfg.Ledger.SweepInterval, "pending_ttl", cfg.Ledger.PendingTTL)
			go func() {
				defer close(done)
				commands.RunSweeper(ctx, cmds, cfg.Ledger.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
