package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *entity.User) error

	// Delete soft-deletes a user by ID
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List retrieves users with pagination
	List(ctx context.Context, page, size int) ([]*entity.User, int64, error)

	// ExistsByEmail checks if an email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines the interface for refresh token operations
type RefreshTokenRepository interface {
	// Create creates a new refresh token
	Create(ctx context.Context, token *entity.RefreshToken) error

	// GetByToken retrieves a refresh token by its value
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// RevokeByToken revokes a specific refresh token
	RevokeByToken(ctx context.Context, token string) error

	// RevokeAllByUserID revokes all refresh tokens for a user
	RevokeAllByUserID(ctx context.Context, userID primitive.ObjectID) error

	// DeleteExpired removes all expired tokens and returns the count
	DeleteExpired(ctx context.Context) (int64, error)
}
