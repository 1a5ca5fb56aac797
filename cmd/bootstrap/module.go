package bootstrap

import (
	"studio-agenda/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
