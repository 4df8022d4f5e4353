package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/dto/request"
)

// UserService defines the interface for user account operations
type UserService interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateProfile updates the caller's own profile fields
	UpdateProfile(ctx context.Context, id string, req *request.UpdateProfileRequest) (*entity.User, error)

	// ChangePassword verifies the old password and sets a new one
	ChangePassword(ctx context.Context, id string, req *request.ChangePasswordRequest) error

	// List retrieves users with pagination
	List(ctx context.Context, page, size int) ([]*entity.User, int64, error)

	// UpdateRole changes a user's role
	UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error)

	// SetBanned sets a user's banned flag
	SetBanned(ctx context.Context, id string, banned bool) (*entity.User, error)

	// Delete soft-deletes a user account
	Delete(ctx context.Context, id string) error
}
