package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// UserDAO extends BaseDAO with user-specific data access operations.
type UserDAO interface {
	BaseDAO[entity.User]

	// FindByEmail retrieves a user by their unique email address.
	// Returns nil, nil if the user is not found.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenDAO defines data access operations for refresh tokens.
type RefreshTokenDAO interface {
	// Create inserts a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a refresh token by its value.
	// Returns nil, nil if not found.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// RevokeByToken revokes a specific refresh token.
	RevokeByToken(ctx context.Context, token string) error

	// RevokeAllByUserID revokes all refresh tokens for a user.
	RevokeAllByUserID(ctx context.Context, userID primitive.ObjectID) error

	// DeleteExpired removes all expired tokens and returns the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
