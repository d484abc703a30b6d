// Package main implements the entry point for the espacios API server,
// the marketplace backend for renting out idle spaces.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/espacios/espacios-api/internal/api"
	"github.com/espacios/espacios-api/internal/config"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/platform/kvstore"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/service"
	"github.com/espacios/espacios-api/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires configuration, logging, storage and the HTTP layer, then serves
// until interrupted.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("storage_backend", cfg.Storage.Backend))

	ctx := context.Background()

	kvs, cleanup, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open %s storage backend: %w", cfg.Storage.Backend, err)
	}
	defer cleanup()

	policy, err := kvstore.PolicyFromString(cfg.Storage.DecodePolicy)
	if err != nil {
		return fmt.Errorf("invalid decode policy: %w", err)
	}

	users := kvstore.NewUserStore(kvs, policy, appLogger)
	spaces := kvstore.NewSpaceStore(kvs, policy, appLogger)
	rentals := kvstore.NewRentalStore(kvs, policy, appLogger)
	reviews := kvstore.NewReviewStore(kvs, policy, appLogger)

	userService, err := service.NewUserService(users, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}
	reviewService, err := service.NewReviewService(reviews, users, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create review service: %w", err)
	}

	handlers := api.Handlers{
		Auth: api.NewAuthHandler(userService),
		Spaces: api.NewSpaceHandler(
			usecase.NewCreateSpace(spaces, appLogger),
			usecase.NewListSpaces(spaces),
			usecase.NewGetSpaceByID(spaces),
			spaces,
		),
		Rentals: api.NewRentalHandler(
			usecase.NewCreateRental(rentals, cfg.Pricing.FlatDailyRate, appLogger),
			usecase.NewListRentalsByUser(rentals),
		),
		Reviews: api.NewReviewHandler(reviewService),
	}

	router := api.NewRouter(handlers, appLogger)
	return serve(cfg.Server.Port, router, appLogger)
}

// openStore builds the configured key-value backend. The returned cleanup
// releases any held connections and is safe to call once.
func openStore(ctx context.Context, cfg config.StorageConfig) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case "memory":
		return kv.NewMemoryStore(), noop, nil

	case "file":
		store, err := kv.NewFileStore(cfg.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case "redis":
		store, err := kv.NewRedisStore(ctx, kv.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("failed to close redis store", "error", err)
			}
		}, nil

	case "postgres":
		store, err := kv.NewPostgresStore(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully with a bounded drain window.
func serve(port int, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdownCh:
		log.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("server shutdown completed")
	return nil
}
