package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseLevel represents the difficulty of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Answer is a reply inside a lesson question thread.
type Answer struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName  string             `bson:"user_name" json:"userName"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Question is a thread attached to a lesson.
type Question struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName  string             `bson:"user_name" json:"userName"`
	Text      string             `bson:"text" json:"text"`
	Answers   []Answer           `bson:"answers" json:"answers"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Lesson is a single content unit inside a course.
type Lesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL    string             `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	VideoLength int                `bson:"video_length,omitempty" json:"videoLength,omitempty"`
	Questions   []Question         `bson:"questions" json:"questions"`
}

// ReviewReply is an admin reply inside a review thread.
type ReviewReply struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName  string             `bson:"user_name" json:"userName"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Review is a user review attached to a course.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName  string             `bson:"user_name" json:"userName"`
	Rating    float64            `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	Replies   []ReviewReply      `bson:"replies" json:"replies"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Course represents a catalog entity with its nested lesson,
// review and question content.
type Course struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Price          float64            `bson:"price" json:"price"`
	EstimatedPrice float64            `bson:"estimated_price,omitempty" json:"estimatedPrice,omitempty"`
	Tags           []string           `bson:"tags" json:"tags"`
	Level          CourseLevel        `bson:"level" json:"level"`
	Thumbnail      string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	DemoURL        string             `bson:"demo_url,omitempty" json:"demoUrl,omitempty"`
	Benefits       []string           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Prerequisites  []string           `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Lessons        []Lesson           `bson:"course_data" json:"courseData"`
	Reviews        []Review           `bson:"reviews" json:"reviews"`
	Ratings        float64            `bson:"ratings" json:"ratings"`
	Purchased      int64              `bson:"purchased" json:"purchased"`
	IsHidden       bool               `bson:"is_hidden" json:"is_hidden"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName returns the MongoDB collection name for courses.
func (Course) CollectionName() string {
	return "courses"
}

// LessonByID returns the lesson with the given id, or nil.
func (c *Course) LessonByID(id primitive.ObjectID) *Lesson {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i]
		}
	}
	return nil
}

// RecalculateRatings recomputes the aggregate rating from reviews.
func (c *Course) RecalculateRatings() {
	if len(c.Reviews) == 0 {
		c.Ratings = 0
		return
	}
	var sum float64
	for _, r := range c.Reviews {
		sum += r.Rating
	}
	c.Ratings = sum / float64(len(c.Reviews))
}

// WithoutContent returns a shallow copy with lesson media stripped.
// Non-enrolled readers see lesson titles but not video references.
func (c *Course) WithoutContent() *Course {
	out := *c
	out.Lessons = make([]Lesson, len(c.Lessons))
	for i, l := range c.Lessons {
		out.Lessons[i] = Lesson{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
		}
	}
	return &out
}
