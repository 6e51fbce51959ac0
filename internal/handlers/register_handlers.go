package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/erp_ledger/cmd/docs"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// corsConfig allows the configured origins. An empty list or "*" allows every origin without credentials.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			origins = nil
			break
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	ipLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter), middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	registerCompanyRoutes(v1, services.Company)

	company := v1.Group("/companies/:"+middleware.CompanyParam, middleware.CompanyContext(services.Company))
	RegisterCompanyScopedRoutes(company, services)

	slog.Info("API v1 routes registered", slog.String("rate_limit", cfg.RateLimit))
	return nil
}

// RegisterCompanyScopedRoutes registers every route acting inside one company. The group must
// already carry middleware.CompanyContext.
func RegisterCompanyScopedRoutes(company *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerCompanyScopedRoutes(company, services.Company)
	RegisterAccountRoutes(company, services.Account)
	registerFiscalYearRoutes(company, services.FiscalYear)
	registerCurrencyRoutes(company, services.Currency)
	registerVoucherRoutes(company, services.Ledger)
	registerReportingRoutes(company, services.Reporting, services.Advisory)
	registerInventoryRoutes(company, services.Inventory)
	registerMasterDataRoutes(company, services.MasterData)
	registerApprovalRoutes(company, services.Approval)
	registerAuditRoutes(company, services.Audit)
	registerLifecycleRoutes(company, services.Lifecycle)
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
