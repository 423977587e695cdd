package components

import (
	"repaircoin/internal/handler"
	"repaircoin/internal/handler/api"
	"repaircoin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTierHandler,
		api.NewPolicyHandler,
		api.NewNoShowHandler,
		api.NewWebhookHandler,
		api.NewMaintenanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
