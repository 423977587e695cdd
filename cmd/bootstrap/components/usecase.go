package components

import (
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/usecase"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPolicyUseCase,
		commands.NewNoShowUseCase,
		commands.NewWebhookUseCase,
		commands.NewCleanupUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTierQueries,
		queries.NewNoShowQueries,
		queries.NewWebhookQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
