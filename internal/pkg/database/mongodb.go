package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrMongoURIRequired = errors.New("MONGODB_URI is required")

// MongoDB is the process-wide document store handle. It is created once by
// ConnectMongo and handed to repositories explicitly.
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
}

var (
	mongoOnce   sync.Once
	mongoHandle *MongoDB
	mongoErr    error
)

// ConnectMongo dials MongoDB on the first call and returns the same handle (or the same
// error) on every later call, whatever arguments those calls pass.
func ConnectMongo(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	mongoOnce.Do(func() {
		mongoHandle, mongoErr = dialMongo(ctx, uri, dbName)
	})
	return mongoHandle, mongoErr
}

func dialMongo(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	if uri == "" {
		return nil, ErrMongoURIRequired
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoDB{Client: client, DB: client.Database(dbName)}, nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
