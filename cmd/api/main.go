// Package main is the entry point for the paystate API server: a thin HTTP
// surface over the billing snapshot resolver.
//
// It loads configuration, selects a catalog provider (file-backed, remote, or
// none), builds the chassis, and serves until SIGINT/SIGTERM triggers a
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"paystate/internal/api/handlers"
	"paystate/internal/catalog"
	"paystate/internal/config"
	"paystate/internal/core"
	"paystate/internal/external"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so main can cleanly exit on error.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.Environment)
	logger.Info("paystate API starting",
		"environment", cfg.Environment,
		"port", cfg.Server.Port,
	)

	provider, err := newCatalogProvider(cfg, logger)
	if err != nil {
		return fmt.Errorf("configuring catalog provider: %w", err)
	}

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	billingHandler := handlers.NewBillingHandler(provider, logger)
	srv.MountV1(billingHandler.RegisterRoutes)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server shutdown complete")
	return nil
}

// newCatalogProvider selects the provider from configuration: a local file
// wins over a remote URL, and with neither configured the service runs
// without a catalog (the resolver degrades to its conservative defaults).
func newCatalogProvider(cfg *config.Config, logger *slog.Logger) (catalog.Provider, error) {
	switch {
	case cfg.Catalog.Path != "":
		logger.Info("using file catalog provider", "path", cfg.Catalog.Path)
		return catalog.NewFileProvider(cfg.Catalog.Path)
	case cfg.Catalog.URL != "":
		logger.Info("using remote catalog provider", "url", cfg.Catalog.URL)
		client := external.NewClient(
			&http.Client{},
			"catalog",
			external.DefaultRetryPolicy(),
			cfg.Catalog.UserAgent,
		)
		return catalog.NewHTTPProvider(client, cfg.Catalog.URL), nil
	default:
		logger.Warn("no catalog configured; resolving without plan metadata")
		return nil, nil
	}
}

// newLogger builds the application logger: JSON output everywhere except
// local development, where text is easier to read.
func newLogger(level, environment string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if environment == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
