package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"novellia-pets/internal/adapters/storage/postgres"
	"novellia-pets/internal/config"
	applog "novellia-pets/internal/platform/logger"
	"novellia-pets/internal/router"
)

// @title Novellia Pets API
// @version 1.0
// @description CRUD API for pets and their vaccine/allergy records.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	var db *sql.DB
	if cfg.HasDatabase() {
		db, err = postgres.Open(cfg.PostgresDSN())
		if err != nil {
			logger.Fatal("database connect failed", zap.Error(err))
		}
		defer db.Close()
		logger.Info("connected to postgres")
	} else {
		logger.Info("no database configured, using in-memory store")
	}

	r := router.NewRouter(router.Options{
		DB:             db,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
