package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// CartService defines the interface for cart operations
type CartService interface {
	// AddCourse adds a course to the user's cart, locking its price
	AddCourse(ctx context.Context, userID, courseID string) (*entity.Cart, error)

	// RemoveCourse removes a course from the user's cart; removing
	// an absent course is a no-op
	RemoveCourse(ctx context.Context, userID, courseID string) (*entity.Cart, error)

	// GetCart retrieves the user's cart, answering a synthetic empty
	// cart when none has been persisted yet
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)

	// ClearCart deletes the user's cart document entirely
	ClearCart(ctx context.Context, userID string) (*entity.Cart, error)
}
