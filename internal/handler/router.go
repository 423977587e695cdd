package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"repaircoin/internal/domain/actor"
	"repaircoin/internal/handler/api"
	"repaircoin/internal/handler/middleware"
	"repaircoin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	tierHandler *api.TierHandler,
	policyHandler *api.PolicyHandler,
	noShowHandler *api.NoShowHandler,
	webhookHandler *api.WebhookHandler,
	maintenanceHandler *api.MaintenanceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, tierHandler, policyHandler, noShowHandler, webhookHandler, maintenanceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	tierHandler *api.TierHandler,
	policyHandler *api.PolicyHandler,
	noShowHandler *api.NoShowHandler,
	webhookHandler *api.WebhookHandler,
	maintenanceHandler *api.MaintenanceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Webhook intake authenticates by source signature upstream, not by
		// bearer token.
		apiGroup.POST("/webhooks/:source", webhookHandler.Receive)

		shops := apiGroup.Group("/shops")
		shops.Use(authMiddleware.RequireAuth())
		{
			addRoutes(shops, []route{
				{Method: http.MethodGet, Path: "/:shopId/tier", Handler: tierHandler.GetShopTier,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleShop)}},
				{Method: http.MethodGet, Path: "/:shopId/no-show-policy", Handler: policyHandler.GetPolicy,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleShop)}},
				{Method: http.MethodPut, Path: "/:shopId/no-show-policy", Handler: policyHandler.UpdatePolicy,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleShop)}},
				{Method: http.MethodPost, Path: "/:shopId/no-shows", Handler: noShowHandler.RecordNoShow,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleShop)}},
				{Method: http.MethodPost, Path: "/:shopId/appointments/completed", Handler: noShowHandler.RecordCompletedAppointment,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleShop)}},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "/:address/no-show-status", Handler: noShowHandler.GetCustomerStatus},
				{Method: http.MethodGet, Path: "/:address/no-show-history", Handler: noShowHandler.GetCustomerHistory},
			})
		}

		noShows := apiGroup.Group("/no-shows")
		noShows.Use(authMiddleware.RequireAuth())
		{
			addRoutes(noShows, []route{
				{Method: http.MethodPost, Path: "/:id/dispute", Handler: noShowHandler.OpenDispute},
				{Method: http.MethodPost, Path: "/:id/dispute/resolve", Handler: noShowHandler.ResolveDispute,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleShop)}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(actor.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/webhooks/health", Handler: webhookHandler.GetHealth},
				{Method: http.MethodGet, Path: "/webhooks/retry-queue", Handler: webhookHandler.GetRetryQueue},
				{Method: http.MethodPost, Path: "/webhooks/:id/retry", Handler: webhookHandler.Retry},
				{Method: http.MethodPost, Path: "/cleanup", Handler: maintenanceHandler.RunCleanup},
				{Method: http.MethodPost, Path: "/cleanup/emergency", Handler: maintenanceHandler.RunEmergencyCleanup},
				{Method: http.MethodGet, Path: "/contract/stats", Handler: tierHandler.GetContractStats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
