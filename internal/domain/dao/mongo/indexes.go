package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
)

// EnsureIndexes creates the unique indexes the insert-if-absent seeding
// relies on. Index creation is idempotent, so this runs on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(document.UserDocument{}.CollectionName())
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	categories := db.Collection(document.CategoryDocument{}.CollectionName())
	categoryIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := categories.Indexes().CreateMany(ctx, categoryIndexes); err != nil {
		return err
	}

	services := db.Collection(document.AdditionalServiceDocument{}.CollectionName())
	serviceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "category", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := services.Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return err
	}

	return nil
}
