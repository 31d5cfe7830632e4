package database

import (
	"context"
	"fmt"

	"dinehub/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewClient creates a new MongoDB client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeoutDuration())
	defer cancel()

	logger.Info().
		Str("database", cfg.Database).
		Int("connect_timeout_seconds", cfg.ConnectTimeout).
		Msg("connecting to MongoDB")

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(Registry())

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	// Verify connection
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Msg("MongoDB connection established")

	return client, nil
}
