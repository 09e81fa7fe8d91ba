package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/invoicecraft/invoice_craft_app/cmd/docs"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/middleware"
	"github.com/invoicecraft/invoice_craft_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services.AuthSvc)
	registerGoogleOAuthRoutes(r, cfg, services.GoogleOAuthSvc)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Document production is the expensive path, so exports and template
	// downloads get their own per-IP budget.
	exportLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.ExportRateLimit,
	})

	registerUserRoutes(v1, services.UserSvc)
	registerCurrencyRoutes(v1, services.CurrencySvc)
	registerInvoiceRoutes(v1, services.InvoiceSvc, services.ExportSvc, exportLimiter)
	registerClientRoutes(v1, services.ClientSvc)
	registerProfileRoutes(v1, services.ProfileSvc)
	registerTemplateRoutes(v1, services.TemplateSvc, exportLimiter)
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
