// Package mongo holds the MongoDB connection helper and the user and task
// repositories.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config holds the connection settings. Timeout bounds both the initial
// dial and every repository operation; zero means defaultTimeout.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials MongoDB and pings the primary before returning the client
// and the selected database, so a bad URI fails at startup rather than on
// the first request.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
