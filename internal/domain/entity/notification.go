package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationStatus tracks whether a user has opened a notification.
type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

// Notification is a per-event record surfaced in-app and optionally
// pushed in real time.
type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"userId"`
	Title     string              `bson:"title" json:"title"`
	Message   string              `bson:"message" json:"message"`
	Status    NotificationStatus  `bson:"status" json:"status"`
	CourseID  *primitive.ObjectID `bson:"course_id,omitempty" json:"courseId,omitempty"`
	OrderID   *primitive.ObjectID `bson:"order_id,omitempty" json:"order,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name for notifications.
func (Notification) CollectionName() string {
	return "notifications"
}
