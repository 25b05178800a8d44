package bootstrap

import (
	"turfbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is enough for one-shot jobs run from the CLI.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	PaymentModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// Module is the full HTTP server with background workers.
var Module = fx.Options(
	CoreModule,
	JWTModule,
	RedisModule,
	WorkerModule,
	components.HandlerModule,
)
