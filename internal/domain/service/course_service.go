package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/dto/request"
)

// CourseService defines the interface for catalog operations
type CourseService interface {
	// Create adds a course to the catalog
	Create(ctx context.Context, req *request.CreateCourseRequest) (*entity.Course, error)

	// Edit updates a course and invalidates its cache entries
	Edit(ctx context.Context, id string, req *request.EditCourseRequest) (*entity.Course, error)

	// Delete removes a course and invalidates its cache entries
	Delete(ctx context.Context, id string) error

	// GetPublic retrieves a course with lesson media stripped
	GetPublic(ctx context.Context, id string) (*entity.Course, error)

	// GetContent retrieves full course content for an enrolled user
	GetContent(ctx context.Context, userID, courseID string) (*entity.Course, error)

	// ListPublic retrieves all visible courses with lesson media stripped
	ListPublic(ctx context.Context) ([]*entity.Course, error)

	// ListAdmin retrieves all courses with pagination
	ListAdmin(ctx context.Context, page, size int) ([]*entity.Course, int64, error)

	// AddLesson appends a lesson to a course
	AddLesson(ctx context.Context, courseID string, req *request.AddLessonRequest) (*entity.Course, error)

	// AddReview attaches a review from an enrolled user
	AddReview(ctx context.Context, userID, courseID string, req *request.AddReviewRequest) (*entity.Course, error)

	// ReplyReview attaches an admin reply to a review
	ReplyReview(ctx context.Context, adminID, courseID string, req *request.ReplyReviewRequest) (*entity.Course, error)

	// AddQuestion opens a question thread on a lesson
	AddQuestion(ctx context.Context, userID, courseID string, req *request.AddQuestionRequest) (*entity.Course, error)

	// AddAnswer replies to a question thread
	AddAnswer(ctx context.Context, userID, courseID string, req *request.AddAnswerRequest) (*entity.Course, error)
}
