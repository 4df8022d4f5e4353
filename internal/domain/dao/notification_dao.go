package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// NotificationDAO defines data access operations for notifications.
type NotificationDAO interface {
	// Create inserts a new notification.
	Create(ctx context.Context, n *entity.Notification) error

	// FindByID retrieves a notification. Returns nil, nil if not found.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error)

	// FindAll retrieves every notification sorted newest-first.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// FindByUserID retrieves a user's notifications sorted newest-first.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error)

	// Update replaces a notification document.
	Update(ctx context.Context, n *entity.Notification) error
}
