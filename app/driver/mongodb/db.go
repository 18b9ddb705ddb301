package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"user-api/app/config"
)

const (
	connectTimeout = 10 * time.Second
	usersColl      = "users"
)

// DB represents a MongoDB database connection
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// NewConnection creates a new MongoDB connection, verifies it with a ping
// and ensures the collection indexes exist
func NewConnection(cfg *config.Config, logger *slog.Logger) (*DB, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.MongoDB),
		logger:   logger,
	}

	if err := db.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	logger.Info("database connection established",
		"database", cfg.MongoDB)

	return db, nil
}

// ensureIndexes creates the unique email index that backs the registration
// uniqueness invariant
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(usersColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Database returns the underlying database handle
func (db *DB) Database() *mongo.Database {
	return db.database
}

// Ping verifies connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the database
func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	db.logger.Info("database connection closed")
	return nil
}
