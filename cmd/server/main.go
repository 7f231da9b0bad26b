package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/tobostore/Catatan-Keuangan/internal/adapter/http"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/handler"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	postgresRepo "github.com/tobostore/Catatan-Keuangan/internal/adapter/repository/postgres"
	redisRepo "github.com/tobostore/Catatan-Keuangan/internal/adapter/repository/redis"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/auth"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/config"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/logger"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/metrics"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/postgres"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/redis"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("AUTH_SECRET must be set")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis when configured; the idempotency layer is optional
	var redisClient *goredis.Client
	var idempotencyStore middleware.IdempotencyStore
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("connected to redis")
	}

	appMetrics := metrics.New()
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	// Initialize repositories
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, cfg.DefaultAccountID)
	categories := usecase.NewCategoryResolver(categoryRepo, appMetrics)
	ledgerUC := usecase.NewLedgerUseCase(transactionRepo, accountUC, categories, appMetrics)
	reportUC := usecase.NewReportUseCase(transactionRepo, accountRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledgerUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	reportHandler := handler.NewReportHandler(reportUC)
	authHandler := handler.NewAuthHandler(userUC, sessions, appMetrics)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		AccountHandler:     accountHandler,
		ReportHandler:      reportHandler,
		AuthHandler:        authHandler,
		HealthHandler:      healthHandler,
		Sessions:           sessions,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
