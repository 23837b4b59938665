// Package testutil provides helpers for integration tests that need a
// real MongoDB instance.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestConfig holds test configuration
type TestConfig struct {
	MongoURI string
	MongoDB  string
}

// DefaultTestConfig returns default test configuration
func DefaultTestConfig() TestConfig {
	mongoURI := os.Getenv("TEST_MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDB := os.Getenv("TEST_MONGO_DB")
	if mongoDB == "" {
		mongoDB = "umzug_test"
	}

	return TestConfig{
		MongoURI: mongoURI,
		MongoDB:  mongoDB,
	}
}

// SkipIfShort skips the test if running in short mode
func SkipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping in short mode")
	}
}

// NewTestMongoDB creates a MongoDB connection for testing
func NewTestMongoDB(t *testing.T, config TestConfig) (*mongo.Client, *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB ping failed: %v", err)
	}

	db := client.Database(config.MongoDB)

	t.Cleanup(func() {
		// Drop test database
		db.Drop(context.Background())
		client.Disconnect(context.Background())
	})

	return client, db
}

// SkipIfNoMongo skips the test if MongoDB is not available
func SkipIfNoMongo(t *testing.T) {
	config := DefaultTestConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		t.Skip("MongoDB not available")
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		t.Skip("MongoDB not available")
	}
}
