// Package integration exercises the MongoDB-backed repository and the order
// service against a real mongod started with testcontainers.
package integration

import (
	"context"
	"testing"

	"dinehub/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoImage = "mongo:7"

// setupMongo starts a MongoDB container and returns a database handle with the
// decimal codec registered, mirroring the production client configuration.
func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, mongoImage)
	require.NoError(t, err, "failed to start mongodb container")
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRegistry(database.Registry()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, client.Ping(ctx, readpref.Primary()))

	return client.Database("dinehub_test")
}
