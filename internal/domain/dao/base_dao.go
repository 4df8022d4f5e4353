// Package dao defines data access object interfaces over the document store.
// The DAO layer keeps repository business logic separate from
// MongoDB-specific query construction.
package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseDAO defines common CRUD operations for all DAOs.
// T is the entity type; documents are keyed by ObjectID.
type BaseDAO[T any] interface {
	// Create inserts a new entity into the database.
	Create(ctx context.Context, entity *T) error

	// FindByID retrieves an entity by its primary key.
	// Returns nil, nil if the entity is not found.
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)

	// Update modifies an existing entity in the database.
	Update(ctx context.Context, entity *T) error

	// Delete removes an entity by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// FindAll retrieves entities with pagination.
	// Returns the entities, total count, and any error.
	FindAll(ctx context.Context, page, size int) ([]*T, int64, error)

	// Count returns the total number of entities.
	Count(ctx context.Context) (int64, error)
}
