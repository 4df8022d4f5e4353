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

// refreshTokenDAO implements dao.RefreshTokenDAO using MongoDB.
type refreshTokenDAO struct {
	*baseMongoDAO[entity.RefreshToken]
}

// NewRefreshTokenDAO creates a new MongoDB-based RefreshTokenDAO.
func NewRefreshTokenDAO(db *mongo.Database) dao.RefreshTokenDAO {
	return &refreshTokenDAO{
		baseMongoDAO: newBaseMongoDAO[entity.RefreshToken](db, entity.RefreshToken{}.CollectionName()),
	}
}

// Create inserts a new refresh token.
func (d *refreshTokenDAO) Create(ctx context.Context, token *entity.RefreshToken) error {
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}
	token.CreatedAt = time.Now()
	return d.insertOne(ctx, token)
}

// FindByToken retrieves a refresh token by its value.
func (d *refreshTokenDAO) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	return d.findOneByFilter(ctx, bson.M{"token": token})
}

// RevokeByToken revokes a specific refresh token.
func (d *refreshTokenDAO) RevokeByToken(ctx context.Context, token string) error {
	return d.updateOne(ctx, bson.M{"token": token}, bson.M{"$set": bson.M{"revoked": true}})
}

// RevokeAllByUserID revokes all refresh tokens for a user.
func (d *refreshTokenDAO) RevokeAllByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := d.collection.UpdateMany(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	return err
}

// DeleteExpired removes all expired tokens and returns the count.
func (d *refreshTokenDAO) DeleteExpired(ctx context.Context) (int64, error) {
	return d.deleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": time.Now()}})
}
