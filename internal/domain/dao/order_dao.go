package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// OrderDAO defines data access operations for orders. Orders are
// append-only; there is no update operation.
type OrderDAO interface {
	// Create inserts a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order. Returns nil, nil if not found.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error)

	// FindAll retrieves orders sorted newest-first with pagination.
	FindAll(ctx context.Context, page, size int) ([]*entity.Order, int64, error)

	// FindByUserID retrieves a user's orders sorted newest-first.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error)
}
