package bootstrap

import (
	"lounge-pos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	components.InfraModule,
	components.UseCaseModule,
	SchedulerModule,
	components.HandlerModule,
)
