package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/creatorhub/marketplace-api/internal/api"
	"github.com/creatorhub/marketplace-api/internal/api/handler"
	"github.com/creatorhub/marketplace-api/internal/core/service"
	"github.com/creatorhub/marketplace-api/internal/infrastructure/config"
	mongoinfra "github.com/creatorhub/marketplace-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/creatorhub/marketplace-api/internal/infrastructure/db/redis"
	"github.com/creatorhub/marketplace-api/internal/infrastructure/payments"
	"github.com/creatorhub/marketplace-api/internal/infrastructure/queue"
	"github.com/creatorhub/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           CreatorHub Marketplace API
// @version         1.0
// @description     UGC creator marketplace: profiles, job postings, reviews and subscription billing.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	redisClient, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	payments.Init(cfg.Stripe.SecretKey)
	gateway := payments.NewGateway(cfg.Stripe.WebhookSecret, cfg.Stripe.FrontendURL)

	// The notification pipeline outlives individual requests: the dispatcher
	// runs until shutdown, draining enqueued events into the inbox store.
	notifications := mongoinfra.NewNotificationRepository(db)
	dispatcher := queue.NewDispatcher(0, service.NewNotificationService(notifications, log), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Config:        cfg,
		Log:           log,
		Mongo:         db,
		Redis:         redisClient,
		Gateway:       gateway,
		Notifier:      dispatcher,
		Notifications: notifications,
		HealthChecks: map[string]handler.HealthCheck{
			"mongo": func(ctx context.Context) error {
				return mongoClient.Ping(ctx, readpref.Primary())
			},
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
