package bootstrap

import (
	"context"

	"repaircoin/internal/usecase/commands"

	"go.uber.org/fx"
)

var CleanupModule = fx.Module("cleanup",
	fx.Provide(
		commands.NewCleanupScheduler,
	),
	fx.Invoke(StartCleanupScheduler),
)

func StartCleanupScheduler(lc fx.Lifecycle, scheduler *commands.CleanupScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
