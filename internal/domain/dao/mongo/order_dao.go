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

// orderDAO implements dao.OrderDAO using MongoDB.
type orderDAO struct {
	*baseMongoDAO[entity.Order]
}

// NewOrderDAO creates a new MongoDB-based OrderDAO.
func NewOrderDAO(db *mongo.Database) dao.OrderDAO {
	return &orderDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Order](db, entity.Order{}.CollectionName()),
	}
}

// Create inserts a new order.
func (d *orderDAO) Create(ctx context.Context, order *entity.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = time.Now()
	return d.insertOne(ctx, order)
}

// FindByID retrieves an order by its ID.
func (d *orderDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	return d.findOneByFilter(ctx, bson.M{"_id": id})
}

// FindAll retrieves orders sorted newest-first with pagination.
func (d *orderDAO) FindAll(ctx context.Context, page, size int) ([]*entity.Order, int64, error) {
	return d.findPage(ctx, bson.M{}, "created_at", page, size)
}

// FindByUserID retrieves a user's orders sorted newest-first.
func (d *orderDAO) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return d.findManyByFilter(ctx, bson.M{"user_id": userID}, opts)
}
