package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/vastram/retail_pos_backend/cmd/docs"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/middleware"
	"github.com/vastram/retail_pos_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Protected API v1 routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to entity
// specific route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	store := memory.NewStore()
	apiLimiter := limiter.New(store, limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.RateLimitPerMinute,
	})

	v1 := r.Group("/api/v1",
		middleware.RateLimit(apiLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	registerProductRoutes(v1, services.Product)
	registerPartyRoutes(v1, services.Party)
	registerBillingRoutes(v1, services.Billing)
	registerReturnRoutes(v1, services.Return)
	registerLedgerRoutes(v1, services.Ledger)
	registerPaymentRoutes(v1, services.Payment)
	registerUserRoutes(v1, services.User)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
