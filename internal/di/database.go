package di

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	mongodao "github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo"
)

// MongoDatabase wraps the MongoDB handle and its client
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// DatabaseModule provides database dependencies
var DatabaseModule = fx.Module("database",
	fx.Provide(provideMongoDatabase),
	fx.Invoke(ensureIndexes),
)

// provideMongoDatabase connects to MongoDB with a bounded retry budget.
// Transient startup races with the database container resolve within a few
// attempts; a store that never comes up fails the whole application.
func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*MongoDatabase, error) {
	logger.Info("Connecting to MongoDB",
		zap.String("uri", cfg.URI),
		zap.String("database", cfg.Name),
	)

	client, err := connectWithRetry(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})

	return &MongoDatabase{DB: client.Database(cfg.Name), Client: client}, nil
}

func connectWithRetry(cfg *config.DatabaseConfig, logger *zap.Logger) (*mongo.Client, error) {
	attempts := cfg.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := tryConnect(cfg)
		if err == nil {
			return client, nil
		}
		lastErr = err

		logger.Warn("MongoDB connection attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if attempt < attempts {
			time.Sleep(cfg.RetryBackoff)
		}
	}
	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", attempts, lastErr)
}

func tryConnect(cfg *config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func ensureIndexes(db *MongoDatabase, cfg *config.DatabaseConfig, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	logger.Info("Creating MongoDB indexes")
	if err := mongodao.EnsureIndexes(ctx, db.DB); err != nil {
		logger.Error("Failed to create indexes", zap.Error(err))
		return err
	}
	return nil
}
