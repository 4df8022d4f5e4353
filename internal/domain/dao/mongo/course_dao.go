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

// courseDAO implements dao.CourseDAO using MongoDB.
type courseDAO struct {
	*baseMongoDAO[entity.Course]
}

// NewCourseDAO creates a new MongoDB-based CourseDAO.
func NewCourseDAO(db *mongo.Database) dao.CourseDAO {
	return &courseDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Course](db, entity.Course{}.CollectionName()),
	}
}

// Create inserts a new course into MongoDB.
func (d *courseDAO) Create(ctx context.Context, course *entity.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	for i := range course.Lessons {
		if course.Lessons[i].ID.IsZero() {
			course.Lessons[i].ID = primitive.NewObjectID()
		}
		if course.Lessons[i].Questions == nil {
			course.Lessons[i].Questions = []entity.Question{}
		}
	}
	if course.Tags == nil {
		course.Tags = []string{}
	}
	if course.Reviews == nil {
		course.Reviews = []entity.Review{}
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	return d.insertOne(ctx, course)
}

// FindByID retrieves a course by its ID.
func (d *courseDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Course, error) {
	return d.findOneByFilter(ctx, bson.M{"_id": id})
}

// Update replaces an existing course document.
func (d *courseDAO) Update(ctx context.Context, course *entity.Course) error {
	course.UpdatedAt = time.Now()
	for i := range course.Lessons {
		if course.Lessons[i].ID.IsZero() {
			course.Lessons[i].ID = primitive.NewObjectID()
		}
	}
	return d.updateOne(ctx, bson.M{"_id": course.ID}, bson.M{"$set": course})
}

// Delete removes a course document.
func (d *courseDAO) Delete(ctx context.Context, id primitive.ObjectID) error {
	return d.deleteOne(ctx, bson.M{"_id": id})
}

// FindAll retrieves courses with pagination, newest first.
func (d *courseDAO) FindAll(ctx context.Context, page, size int) ([]*entity.Course, int64, error) {
	return d.findPage(ctx, bson.M{}, "created_at", page, size)
}

// Count returns the total number of courses.
func (d *courseDAO) Count(ctx context.Context) (int64, error) {
	return d.count(ctx, bson.M{})
}

// FindAllVisible retrieves all non-hidden courses, newest first.
func (d *courseDAO) FindAllVisible(ctx context.Context) ([]*entity.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return d.findManyByFilter(ctx, bson.M{"is_hidden": false}, opts)
}

// IncrementPurchased adds one to the course's purchase counter.
func (d *courseDAO) IncrementPurchased(ctx context.Context, id primitive.ObjectID) error {
	return d.updateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"purchased": 1}})
}
