package components

import (
	"repaircoin/internal/infra/readstore"
	repo_impl "repaircoin/internal/infra/repository"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewShopRepository,
			fx.As(new(queries.ShopReadStore)),
			fx.As(new(queries.ShopTierCache)),
		),
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(queries.CustomerReadStore)),
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repo_impl.NewPolicyRepository,
			fx.As(new(queries.PolicyReadStore)),
			fx.As(new(commands.PolicyRepository)),
		),
		fx.Annotate(
			repo_impl.NewHistoryRepository,
			fx.As(new(queries.HistoryReadStore)),
			fx.As(new(commands.HistoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewWebhookLogRepository,
			fx.As(new(commands.WebhookLogRepository)),
		),
		fx.Annotate(
			repo_impl.NewMaintenanceRepository,
			fx.As(new(commands.MaintenanceRepository)),
		),
		// Read-side aggregation for webhook health
		fx.Annotate(
			readstore.NewWebhookHealthReadStore,
			fx.As(new(queries.WebhookHealthReadStore)),
		),
	),
)
