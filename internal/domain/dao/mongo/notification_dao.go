package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edumart/edumart-api/internal/domain/dao"
	"github.com/edumart/edumart-api/internal/domain/entity"
)

// notificationDAO implements dao.NotificationDAO using MongoDB.
type notificationDAO struct {
	*baseMongoDAO[entity.Notification]
}

// NewNotificationDAO creates a new MongoDB-based NotificationDAO.
func NewNotificationDAO(db *mongo.Database) dao.NotificationDAO {
	return &notificationDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Notification](db, entity.Notification{}.CollectionName()),
	}
}

// Create inserts a new notification.
func (d *notificationDAO) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.Status == "" {
		n.Status = entity.NotificationUnread
	}
	n.CreatedAt = time.Now()
	return d.insertOne(ctx, n)
}

// FindByID retrieves a notification by its ID.
func (d *notificationDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error) {
	return d.findOneByFilter(ctx, bson.M{"_id": id})
}

// FindAll retrieves every notification sorted newest-first.
func (d *notificationDAO) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return d.findManyByFilter(ctx, bson.M{}, opts)
}

// FindByUserID retrieves a user's notifications sorted newest-first.
func (d *notificationDAO) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return d.findManyByFilter(ctx, bson.M{"user_id": userID}, opts)
}

// Update replaces a notification document.
func (d *notificationDAO) Update(ctx context.Context, n *entity.Notification) error {
	return d.updateOne(ctx, bson.M{"_id": n.ID}, bson.M{"$set": n})
}
