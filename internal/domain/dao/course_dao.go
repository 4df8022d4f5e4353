package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// CourseDAO extends BaseDAO with catalog-specific operations.
type CourseDAO interface {
	BaseDAO[entity.Course]

	// FindAllVisible retrieves all courses that are not hidden,
	// sorted newest-first.
	FindAllVisible(ctx context.Context) ([]*entity.Course, error)

	// IncrementPurchased adds one to the course's purchase counter.
	IncrementPurchased(ctx context.Context, id primitive.ObjectID) error
}
