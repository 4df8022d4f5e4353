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

// userDAO implements dao.UserDAO using MongoDB.
type userDAO struct {
	*baseMongoDAO[entity.User]
}

// NewUserDAO creates a new MongoDB-based UserDAO.
func NewUserDAO(db *mongo.Database) dao.UserDAO {
	return &userDAO{
		baseMongoDAO: newBaseMongoDAO[entity.User](db, entity.User{}.CollectionName()),
	}
}

// Create inserts a new user into MongoDB.
func (d *userDAO) Create(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Courses == nil {
		user.Courses = []entity.Enrollment{}
	}
	return d.insertOne(ctx, user)
}

// FindByID retrieves a user by their ID.
func (d *userDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return d.findOneByFilter(ctx, withNotDeleted(bson.M{"_id": id}))
}

// Update modifies an existing user in MongoDB.
func (d *userDAO) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	return d.updateOne(ctx, filter, update)
}

// Delete performs a soft delete on a user.
func (d *userDAO) Delete(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"deleted_at": now}}
	return d.updateOne(ctx, filter, update)
}

// FindAll retrieves users with pagination, newest first.
func (d *userDAO) FindAll(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	return d.findPage(ctx, notDeletedFilter(), "created_at", page, size)
}

// Count returns the total number of users.
func (d *userDAO) Count(ctx context.Context) (int64, error) {
	return d.count(ctx, notDeletedFilter())
}

// FindByEmail retrieves a user by their email.
func (d *userDAO) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return d.findOneByFilter(ctx, withNotDeleted(bson.M{"email": email}))
}

// ExistsByEmail checks if a user with the given email exists.
func (d *userDAO) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := d.count(ctx, withNotDeleted(bson.M{"email": email}))
	return count > 0, err
}
