package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// CartDAO defines data access operations for per-user carts.
// There is at most one cart document per user id.
type CartDAO interface {
	// Create inserts a new cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindByUserID retrieves the user's cart.
	// Returns nil, nil if the user has no cart.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error)

	// Update replaces the cart's items.
	Update(ctx context.Context, cart *entity.Cart) error

	// DeleteByUserID removes the user's cart document.
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}
