package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/erp_ledger/internal/adapters/advisory"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/platform/database"
	"github.com/SscSPs/erp_ledger/internal/platform/lock"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/pgsql"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title ERP Ledger API
// @version 1.0
// @description Multi-company double-entry ledger with reporting, inventory and approvals.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := newStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	locker, err := newLocker(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize company locker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var advisor portssvc.Advisor
	if cfg.OpenAIAPIKey != "" {
		advisor = advisory.NewOpenAIAdvisor(cfg.OpenAIAPIKey, cfg.OpenAIModel, advisory.DefaultConfig(cfg.AdvisoryMaxRetries), logger)
		logger.Info("Advisory service enabled", slog.String("model", cfg.OpenAIModel))
	}

	serviceContainer := services.NewServiceContainer(cfg, store, locker, advisor)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newStore opens the configured store. The postgres store is migrated before use.
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.Store, error) {
	if cfg.StoreDriver != config.StorePostgres {
		logger.Warn("Using in-memory store; data is lost on restart")
		return memory.NewStore(), nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return nil, err
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewStore(pool), nil
}

// newLocker returns a redsync locker when Redis is configured, otherwise an in-process one.
func newLocker(cfg *config.Config, logger *slog.Logger) (portssvc.CompanyLocker, error) {
	if cfg.RedisAddr == "" {
		return lock.NewLocalLocker(cfg.LockTimeout, logger), nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	opts := lock.DefaultRedisOptions()
	opts.AcquireTimeout = cfg.LockTimeout
	locker, err := lock.NewRedisLocker(client, opts, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Using Redis company lock", slog.String("redis_addr", cfg.RedisAddr))
	return locker, nil
}
