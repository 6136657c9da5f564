package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/smallbatch-apps/cashfloat/internal/adapter/http"
	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/handler"
	"github.com/smallbatch-apps/cashfloat/internal/adapter/paymentsync"
	"github.com/smallbatch-apps/cashfloat/internal/adapter/receipts"
	postgresRepo "github.com/smallbatch-apps/cashfloat/internal/adapter/repository/postgres"
	redisRepo "github.com/smallbatch-apps/cashfloat/internal/adapter/repository/redis"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/auth"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/config"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/logger"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/metrics"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/postgres"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/redis"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "cashfloat",
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Repositories and stores
	retrier := postgresRepo.NewRetrier(appLogger)
	entryRepo := postgresRepo.NewEntryRepository(pool, retrier)
	expenseRepo := postgresRepo.NewExpenseRepository(pool, retrier)
	reconRepo := postgresRepo.NewReconciliationRepository(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	flowStore := redisRepo.NewFlowStore(redisClient, cfg.FlowSessionTTL)

	receiptStore, err := receipts.NewLocalStore(cfg.ReceiptsDir)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to prepare receipts directory")
	}

	var syncer usecase.PaymentSyncer
	if cfg.QuickBooksBaseURL != "" {
		syncer = paymentsync.NewQuickBooksClient(paymentsync.Config{
			BaseURL:     cfg.QuickBooksBaseURL,
			RealmID:     cfg.QuickBooksRealmID,
			AccessToken: cfg.QuickBooksAccessToken,
			Timeout:     cfg.QuickBooksTimeout,
		}, appLogger, appMetrics)
		appLogger.Info().Msg("quickbooks payment sync enabled")
	}

	// Use cases
	entryUC := usecase.NewEntryUseCase(entryRepo, settingsRepo, auditRepo, idGen, syncer, appMetrics)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, auditRepo, receiptStore, idGen, appMetrics)
	ledgerUC := usecase.NewLedgerUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)
	summaryUC := usecase.NewSummaryUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(reconRepo, entryRepo, expenseRepo, settingsRepo, auditRepo, idGen, appMetrics)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, auditRepo, idGen, appMetrics)
	flowUC := usecase.NewPOSFlowUseCase(flowStore, entryUC, auditRepo, idGen, appMetrics)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// Optional JWT auth
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		appLogger.Info().Msg("jwt authentication enabled")
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EntryHandler:          handler.NewEntryHandler(entryUC),
		ExpenseHandler:        handler.NewExpenseHandler(expenseUC, receiptStore),
		LedgerHandler:         handler.NewLedgerHandler(ledgerUC, summaryUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		SettingsHandler:       handler.NewSettingsHandler(settingsUC),
		POSFlowHandler:        handler.NewPOSFlowHandler(flowUC),
		AuditHandler:          handler.NewAuditHandler(auditUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		Logger:                appLogger,
		Metrics:               appMetrics,
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		JWTManager:            jwtManager,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
