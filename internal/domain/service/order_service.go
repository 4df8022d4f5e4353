package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/dto/request"
)

// OrderService defines the interface for order materialization
type OrderService interface {
	// Create materializes an order from the user's cart. Enrollment,
	// cart pruning, purchase counters, notifications and the
	// confirmation email only happen when the payment succeeded; a
	// failed payment still produces a Failed order record.
	Create(ctx context.Context, userID string, req *request.CreateOrderRequest) (*entity.Order, error)

	// GetByID retrieves an order visible to the caller
	GetByID(ctx context.Context, callerID string, isAdmin bool, orderID string) (*entity.Order, error)

	// List retrieves all orders with pagination, newest first
	List(ctx context.Context, page, size int) ([]*entity.Order, int64, error)

	// ListByUser retrieves a user's orders, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
