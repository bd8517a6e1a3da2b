// Package mongo backs the sweet catalog, user accounts, and the stock
// movement audit trail with MongoDB collections.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository operation. The stock-adjustment
// handlers sit on the request path, so a hung database must surface as an
// error rather than a stalled purchase.
const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the catalog database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration // dial and ping bound, defaultTimeout when zero
}

// Connect dials the catalog database and pings it before any repository is
// built, so a bad URI fails startup instead of the first purchase.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
