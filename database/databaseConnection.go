package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the MongoDB database named by the configuration. The caller
// decides what to do on failure; the server can run without a store so the
// diagnostic endpoint stays reachable.
func Connect(uri, name string) (*mongo.Database, error) {
	if uri == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if name == "" {
		return nil, errors.New("DATABASE_NAME is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(name), nil
}
