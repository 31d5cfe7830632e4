package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinehub/internal/catalog"
	"dinehub/internal/config"
	"dinehub/internal/database"
	"dinehub/internal/handler"
	"dinehub/internal/health"
	"dinehub/internal/metrics"
	"dinehub/internal/repository"
	"dinehub/internal/router"
	"dinehub/internal/service"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting dinehub order API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MongoDB client
	client, err := database.NewClient(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect mongo client")
		}
	}()

	db := client.Database(cfg.Database.Database)

	// Initialize repository
	orderRepo := repository.NewOrderRepository(db, logger)

	// Initialize menu catalog client when configured
	var catalogClient catalog.Client
	if cfg.Catalog.BaseURL != "" {
		catalogClient = catalog.NewHTTPClient(
			cfg.Catalog.BaseURL,
			time.Duration(cfg.Catalog.Timeout)*time.Second,
			logger,
		)
		logger.Info().Str("base_url", cfg.Catalog.BaseURL).Msg("menu catalog price resolution enabled")
	} else {
		logger.Info().Msg("menu catalog disabled, using caller-supplied prices")
	}

	// Initialize metrics
	m := metrics.New()

	// Initialize service and handlers
	orderService := service.NewOrderService(orderRepo, catalogClient, cfg.Order, m, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Health checks
	healthHandler := health.NewHandler(5 * time.Second)
	healthHandler.Register("mongodb", func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})

	// Initialize router
	mux := router.New(orderHandler, healthHandler, m, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
