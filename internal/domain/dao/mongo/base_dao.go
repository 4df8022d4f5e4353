// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseMongoDAO provides common MongoDB operations for all entity DAOs.
type baseMongoDAO[T any] struct {
	collection *mongo.Collection
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO[T any](db *mongo.Database, collectionName string) *baseMongoDAO[T] {
	return &baseMongoDAO[T]{
		collection: db.Collection(collectionName),
	}
}

// notDeletedFilter returns a filter that excludes soft-deleted documents.
func notDeletedFilter() bson.M {
	return bson.M{"deleted_at": nil}
}

// withNotDeleted adds the not-deleted condition to an existing filter.
func withNotDeleted(filter bson.M) bson.M {
	filter["deleted_at"] = nil
	return filter
}

// count returns the count of documents matching the filter.
func (d *baseMongoDAO[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	return d.collection.CountDocuments(ctx, filter)
}

// existsBy checks if a document exists by a field value.
func (d *baseMongoDAO[T]) existsBy(ctx context.Context, field string, value any) (bool, error) {
	count, err := d.collection.CountDocuments(ctx, bson.M{field: value})
	return count > 0, err
}

// findOneByFilter finds a single document matching the filter.
// Returns nil, nil when no document matches.
func (d *baseMongoDAO[T]) findOneByFilter(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := d.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// findManyByFilter finds all documents matching the filter.
func (d *baseMongoDAO[T]) findManyByFilter(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*T, error) {
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findPage finds documents matching the filter with pagination,
// sorted by the given field descending.
func (d *baseMongoDAO[T]) findPage(ctx context.Context, filter bson.M, sortField string, page, size int) ([]*T, int64, error) {
	total, err := d.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: sortField, Value: -1}})

	docs, err := d.findManyByFilter(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// insertOne inserts a single document.
func (d *baseMongoDAO[T]) insertOne(ctx context.Context, doc any) error {
	_, err := d.collection.InsertOne(ctx, doc)
	return err
}

// updateOne updates a single document matching the filter.
func (d *baseMongoDAO[T]) updateOne(ctx context.Context, filter bson.M, update bson.M) error {
	_, err := d.collection.UpdateOne(ctx, filter, update)
	return err
}

// deleteOne removes a single document matching the filter.
func (d *baseMongoDAO[T]) deleteOne(ctx context.Context, filter bson.M) error {
	_, err := d.collection.DeleteOne(ctx, filter)
	return err
}

// deleteMany deletes all documents matching the filter and returns the count.
func (d *baseMongoDAO[T]) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := d.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
