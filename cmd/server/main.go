package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/challenge/todo-list-api/docs" // swagger docs

	"github.com/challenge/todo-list-api/internal/api"
	"github.com/challenge/todo-list-api/internal/infrastructure/db/mongo"
	"github.com/challenge/todo-list-api/internal/infrastructure/db/redis"
	"github.com/challenge/todo-list-api/internal/pkg/config"
	"github.com/challenge/todo-list-api/internal/pkg/token"
	"github.com/challenge/todo-list-api/pkg/logger"
)

// @title To-Do List API
// @version 1.0
// @description Credential-protected API for managing per-user task lists.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret, insecure := cfg.ResolveJWTSecret()
	if insecure {
		log.Warn().Msg("JWT_SECRET is not set; using the insecure default signing secret, do not run this configuration in production")
	}
	codec := token.NewCodec(secret, cfg.TokenTTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongo.NewTaskRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("task index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, codec, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
