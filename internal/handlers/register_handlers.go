package handlers

import (
	"net/http"

	"github.com/SscSPs/uk_books_app/cmd/docs"
	"github.com/SscSPs/uk_books_app/internal/analytics"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/SscSPs/uk_books_app/internal/middleware"
	"github.com/SscSPs/uk_books_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *localization.Catalog,
	tracker analytics.Tracker,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, catalog, tracker)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *localization.Catalog,
	tracker analytics.Tracker,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.LocaleMiddleware(catalog, cfg.DefaultLocale),
		middleware.AnalyticsMiddleware(tracker),
	)

	RegisterInvoiceRoutes(v1, services.Invoice)
	RegisterVatRoutes(v1, services.VatReport)
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
