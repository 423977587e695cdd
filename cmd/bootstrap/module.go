package bootstrap

import (
	"repaircoin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BlockchainModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	CleanupModule,
)
