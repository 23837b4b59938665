// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseMongoDAO provides common MongoDB operations shared by the entity DAOs.
type baseMongoDAO[D any] struct {
	collection *mongo.Collection
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO[D any](db *mongo.Database, collectionName string) *baseMongoDAO[D] {
	return &baseMongoDAO[D]{
		collection: db.Collection(collectionName),
	}
}

// insertIfAbsent atomically inserts doc unless a document matching filter
// already exists. It relies on the upsert primitive plus the collection's
// unique index: when two processes race on the same key, one insert wins
// and the loser's duplicate-key rejection is reported as (false, nil),
// because the desired end state holds either way.
func (d *baseMongoDAO[D]) insertIfAbsent(ctx context.Context, filter bson.M, doc any) (bool, error) {
	update := bson.M{"$setOnInsert": doc}
	opts := options.Update().SetUpsert(true)

	res, err := d.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// findOneByFilter finds a single document matching the filter.
func (d *baseMongoDAO[D]) findOneByFilter(ctx context.Context, filter bson.M, result any) error {
	return d.collection.FindOne(ctx, filter).Decode(result)
}

// findManyByFilter finds all documents matching the filter.
func (d *baseMongoDAO[D]) findManyByFilter(ctx context.Context, filter bson.M, opts *options.FindOptions, results any) error {
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

// updateOne updates a single document matching the filter and returns the
// number of matched documents.
func (d *baseMongoDAO[D]) updateOne(ctx context.Context, filter bson.M, update bson.M) (int64, error) {
	res, err := d.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// toMap round-trips a document struct through bson into a flat key map.
func toMap(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
