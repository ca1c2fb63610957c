package main

import (
	"context"
	"driver-training-service/internal/adapters/idgen"
	"driver-training-service/internal/api"
	"driver-training-service/internal/bootstrap"
	"driver-training-service/internal/config"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/report"
	"driver-training-service/internal/seed"
	"driver-training-service/internal/services"
	"driver-training-service/internal/store"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the configured state backend behind the store and starts the HTTP server.
func main() {
	cfg, foundEnv, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if !foundEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := bootstrap.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeBackend()

	st, err := store.New(ctx, backend, idgen.NewUUIDGenerator(), logger)
	if err != nil {
		return err
	}

	// Seed demo data on first start for local runs.
	if err := seedIfEmpty(ctx, st, cfg.SeedPath, logger); err != nil {
		return err
	}

	reports := report.NewGenerator()
	if cfg.CappedProgress {
		reports.Percentage = services.CappedProgressPercentage
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(st, reports, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("backend", cfg.Backend))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func seedIfEmpty(ctx context.Context, st *store.Store, path string, logger *zap.Logger) error {
	if len(st.Drivers()) > 0 {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info("no seed file; starting empty", zap.String("path", path))
		return nil
	}

	fixture, err := seed.Load(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	res, err := seed.Apply(ctx, st, fixture)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("seeded store", zap.String("path", path), zap.Int("drivers", res.Drivers), zap.Int("entries", res.Entries))
	return nil
}
