package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/reach-summit/summit-api/internal/auth"
	"github.com/reach-summit/summit-api/internal/config"
	"github.com/reach-summit/summit-api/internal/database"
	"github.com/reach-summit/summit-api/internal/handlers"
	"github.com/reach-summit/summit-api/internal/logger"
	"github.com/reach-summit/summit-api/internal/pricing"
	"github.com/reach-summit/summit-api/internal/service"
	"github.com/reach-summit/summit-api/internal/store"
	"github.com/reach-summit/summit-api/internal/store/gormstore"
	"github.com/reach-summit/summit-api/internal/store/sqlstore"
)

const shutdownTimeout = 10 * time.Second

type backend interface {
	store.Store
	store.Pinger
}

func runServe(ctx context.Context, cfgFile string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rates := pricing.RatesFromConfig(cfg.PricingConfig)
	if err := rates.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// gorm owns the schema for both store backends.
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	st, closeStore, err := openStore(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := service.New(st, pricing.NewEngine(rates), log)
	authenticator, err := auth.New(auth.Config{
		AdminPassword:     cfg.AdminPassword,
		AdminPasswordHash: cfg.AdminPasswordHash,
		SigningKey:        []byte(cfg.JWTSecret),
		Validity:          cfg.TokenValidity,
	})
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	handlers.RegisterRoutes(r, log, handlers.Options{AllowedOrigins: cfg.CORSAllowedOrigins},
		handlers.NewRegistrationHandler(svc, log),
		handlers.NewAdminHandler(svc, authenticator, log),
		handlers.NewHealthHandler(st, log),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("database", cfg.DatabaseDriver),
			zap.String("store", cfg.StoreBackend),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (backend, func(), error) {
	if cfg.StoreBackend != config.BackendSQLX {
		return gormstore.New(db), func() {}, nil
	}

	s, err := sqlstore.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}
