package components

import (
	"hotel-booking-gateway/internal/infra/readstore"
	"hotel-booking-gateway/internal/infra/repository"
	"hotel-booking-gateway/internal/pkg/clock"
	"hotel-booking-gateway/internal/usecase/commands"
	"hotel-booking-gateway/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		NewPaymentAttemptReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewPaymentLedger,
	),
)

// A nil pool means no database is configured.

func NewPaymentAttemptReadStore(pool *pgxpool.Pool) queries.PaymentAttemptReadStore {
	if pool == nil {
		return readstore.NopPaymentAttemptReadStore{}
	}
	return readstore.NewPaymentAttemptReadStore(pool)
}

func NewPaymentLedger(pool *pgxpool.Pool, clk clock.Clock) commands.PaymentLedger {
	if pool == nil {
		return repository.NopPaymentAttemptRepository{}
	}
	return repository.NewPaymentAttemptRepository(pool, clk)
}
