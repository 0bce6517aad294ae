package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-gateway/internal/infra/db"
	"hotel-booking-gateway/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool when no database is configured. The ledger then
// falls back to no-op stores.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !cfg.DB.Enabled() {
		logger.Warn("Database not configured, payment ledger disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}
	logger.Info("Connected to database", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
