package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sweetshop/inventory-system/internal/api"
	"github.com/sweetshop/inventory-system/internal/infrastructure/config"
	mongodb "github.com/sweetshop/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/inventory-system/internal/infrastructure/db/redis"
	"github.com/sweetshop/inventory-system/internal/infrastructure/queue"
	"github.com/sweetshop/inventory-system/pkg/logger"
)

// @title           Sweet Shop Inventory API
// @version         1.0
// @description     Authenticated catalog CRUD and stock-adjustment service.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB (required) ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	authRepo := mongodb.NewAuthRepository(db)
	sweetRepo := mongodb.NewSweetRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := sweetRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create sweet indexes")
	}

	if err := mongodb.EnsureAdminUser(ctx, authRepo, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	// --- Redis (optional: login throttling + readiness) ---
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
	} else {
		log.Warn().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	// --- Stock movement audit pipeline ---
	dispatcher := queue.NewDispatcher(0, mongodb.NewMovementRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, api.Options{
		JWTSecret:       cfg.JWTSecret,
		TokenTTL:        cfg.TokenTTL,
		Debug:           !cfg.Production(),
		LoginRateLimit:  cfg.Rate.LoginLimit,
		LoginRateWindow: cfg.Rate.LoginWindow,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}
