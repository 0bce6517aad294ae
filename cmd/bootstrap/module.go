package bootstrap

import (
	"hotel-booking-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	BrokerModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
