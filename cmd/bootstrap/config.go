package bootstrap

import (
	"repaircoin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CleanupConfig { return cfg.Cleanup },
		func(cfg config.Config) config.BlockchainConfig { return cfg.Blockchain },
	),
)
