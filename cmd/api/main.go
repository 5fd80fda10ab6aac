package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/provider/zenospay"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
	timeProvider "github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger.Format == "json")
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	for _, w := range warnings {
		appLogger.Warn("Configuration warning", map[string]any{"warning": w})
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database; migrations run on connect when autoMigrate is set
	dbManager := database.NewManager(cfg.DatabaseConfig(), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbManager.Close()

	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	paymentEventRepo := repository.NewPaymentEventRepository(db, appLogger)

	// Keys are parsed once; a bad key aborts startup
	codec, err := signature.NewCodec(cfg.Zenospay.PrivateKey, cfg.Zenospay.PublicKey)
	if err != nil {
		return fmt.Errorf("load signing keys: %w", err)
	}

	var appMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New()
		if sqlDB, err := dbManager.SQLDB(); err == nil {
			if err := appMetrics.WatchDB(sqlDB, cfg.Database.Database); err != nil {
				appLogger.Warn("Failed to export database pool metrics", map[string]any{"error": err})
			}
		}
	}

	provider := zenospay.NewClient(cfg.ProviderConfig(), codec, tp, appLogger, zenospay.WithMetrics(appMetrics))

	verifier := signature.NewWebhookVerifier(codec, cfg.Zenospay.CallbackPath, !cfg.Zenospay.DisableWebhookVerification)
	if !verifier.Enabled() {
		appLogger.Warn("Webhook signature verification is DISABLED; any caller can settle transactions", nil)
	}

	publisher, err := newPublisher(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{"error": err})
		}
	}()

	opts := []transaction.Option{
		transaction.WithPaymentEvents(paymentEventRepo),
		transaction.WithPublisher(publisher),
	}

	if cfg.Cache.Enabled {
		redisCfg := cfg.RedisConfig()
		client, err := cache.NewRedisClient(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		opts = append(opts, transaction.WithStatusCache(
			cache.NewRedisStatusCache(client, redisCfg.KeyPrefix, redisCfg.TTL, appLogger),
		))
	}

	transactionService := transaction.NewService(transactionRepo, provider, tp, appLogger, opts...)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, tp)
	if err != nil {
		return err
	}

	router := routes.NewRouter(routes.Handlers{
		Transactions: handler.NewTransactionHandler(transactionService, appMetrics, appLogger),
		Webhooks:     handler.NewWebhookHandler(transactionService, verifier, appMetrics, appLogger),
		Health:       handler.NewHealthHandler(dbManager, appLogger),
	}, tokens, appMetrics, appLogger, tp)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"callback_path": cfg.Zenospay.CallbackPath,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := tp.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// newPublisher returns the Kafka publisher, or a log-only publisher when Kafka is disabled
func newPublisher(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (event.Publisher, error) {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Kafka disabled; fulfillment events are only logged", nil)
		return messaging.NewLogPublisher(appLogger), nil
	}

	publisher, err := messaging.NewKafkaPublisher(ctx, cfg.KafkaPublisherConfig(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	return publisher, nil
}
