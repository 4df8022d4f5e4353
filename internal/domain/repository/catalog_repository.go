package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// CourseRepository defines the interface for catalog data operations
type CourseRepository interface {
	// Create creates a new course
	Create(ctx context.Context, course *entity.Course) error

	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Course, error)

	// Update replaces an existing course
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List retrieves courses with pagination
	List(ctx context.Context, page, size int) ([]*entity.Course, int64, error)

	// ListVisible retrieves all non-hidden courses
	ListVisible(ctx context.Context) ([]*entity.Course, error)

	// IncrementPurchased adds one to the purchase counter
	IncrementPurchased(ctx context.Context, id primitive.ObjectID) error
}

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	// Create creates a new cart
	Create(ctx context.Context, cart *entity.Cart) error

	// GetByUserID retrieves the user's cart, nil if none exists
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error)

	// Update replaces the cart's items
	Update(ctx context.Context, cart *entity.Cart) error

	// DeleteByUserID removes the user's cart
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *entity.Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error)

	// List retrieves orders with pagination, newest first
	List(ctx context.Context, page, size int) ([]*entity.Order, int64, error)

	// ListByUserID retrieves a user's orders, newest first
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error)
}

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	// Create creates a new notification
	Create(ctx context.Context, n *entity.Notification) error

	// GetByID retrieves a notification by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error)

	// ListAll retrieves every notification, newest first
	ListAll(ctx context.Context) ([]*entity.Notification, error)

	// ListByUserID retrieves a user's notifications, newest first
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error)

	// Update replaces a notification
	Update(ctx context.Context, n *entity.Notification) error
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create creates a new invoice
	Create(ctx context.Context, inv *entity.Invoice) error

	// GetByID retrieves an invoice by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Invoice, error)

	// ListAll retrieves every invoice, newest first
	ListAll(ctx context.Context) ([]*entity.Invoice, error)

	// Delete removes an invoice
	Delete(ctx context.Context, id primitive.ObjectID) error
}
