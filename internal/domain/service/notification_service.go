package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	// Create stores a notification and pushes it to the recipient
	Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error)

	// ListAll retrieves every notification, newest first
	ListAll(ctx context.Context) ([]*entity.Notification, error)

	// ListForUser retrieves the caller's notifications, newest first
	ListForUser(ctx context.Context, userID string) ([]*entity.Notification, error)

	// MarkRead marks a notification read. Only the recipient or an
	// admin may update it.
	MarkRead(ctx context.Context, callerID string, isAdmin bool, notificationID string) (*entity.Notification, error)
}
