package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edumart/edumart-api/internal/domain/dao"
	"github.com/edumart/edumart-api/internal/domain/entity"
)

// cartDAO implements dao.CartDAO using MongoDB.
type cartDAO struct {
	*baseMongoDAO[entity.Cart]
}

// NewCartDAO creates a new MongoDB-based CartDAO.
func NewCartDAO(db *mongo.Database) dao.CartDAO {
	return &cartDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Cart](db, entity.Cart{}.CollectionName()),
	}
}

// Create inserts a new cart. The carts collection carries a unique
// index on user_id.
func (d *cartDAO) Create(ctx context.Context, cart *entity.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}
	cart.CreatedAt = time.Now()
	cart.UpdatedAt = time.Now()
	return d.insertOne(ctx, cart)
}

// FindByUserID retrieves the user's cart.
func (d *cartDAO) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error) {
	return d.findOneByFilter(ctx, bson.M{"user_id": userID})
}

// Update replaces the cart's items.
func (d *cartDAO) Update(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	return d.updateOne(ctx, bson.M{"_id": cart.ID}, bson.M{"$set": cart})
}

// DeleteByUserID removes the user's cart document.
func (d *cartDAO) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	return d.deleteOne(ctx, bson.M{"user_id": userID})
}
