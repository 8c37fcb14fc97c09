package bootstrap

import (
	"majestic-manor/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GatewayModule,
	CacheModule,
	EventsModule,
	ObservabilityModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
