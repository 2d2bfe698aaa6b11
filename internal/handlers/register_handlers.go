package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jpcarvajal/funeraria_mgmt_app/cmd/docs"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/middleware"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// AuthMiddleware validates the JWT; TenantMiddleware resolves the caller's
	// funeral home and role once so every handler downstream is tenant-scoped.
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.TenantMiddleware(services.User),
	)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	registerFuneralHomeRoutes(v1, services.FuneralHome, services.Branch)
	registerServiceRoutes(v1, services.Case)
	registerTransactionRoutes(v1, services.Transaction, services.Expense)
	registerCollaboratorRoutes(v1, services.Collaborator)
	registerPayrollRoutes(v1, services.Payroll)
	registerCatalogRoutes(v1, services.Catalog)
	registerVehicleRoutes(v1, services.Vehicle)
	registerSupplierRoutes(v1, services.Supplier)
	registerQuotaRoutes(v1, services.Quota)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
