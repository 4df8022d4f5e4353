package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole represents user roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Enrollment grants a user access to a course's content.
type Enrollment struct {
	CourseID   primitive.ObjectID `bson:"course_id" json:"courseId"`
	EnrolledAt time.Time          `bson:"enrolled_at" json:"enrollmentDate"`
}

// User represents an account in the marketplace
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	Role       UserRole           `bson:"role" json:"role"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	IsBanned   bool               `bson:"is_banned" json:"is_banned"`
	IsVerified bool               `bson:"is_verified" json:"is_verified"`
	Courses    []Enrollment       `bson:"courses" json:"courses"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	DeletedAt  *time.Time         `bson:"deleted_at,omitempty" json:"-"`
}

// CollectionName returns the MongoDB collection name for users.
func (User) CollectionName() string {
	return "users"
}

// IsEnrolled reports whether the user already holds an enrollment
// for the given course. A course id appears at most once in Courses.
func (u *User) IsEnrolled(courseID primitive.ObjectID) bool {
	for _, e := range u.Courses {
		if e.CourseID == courseID {
			return true
		}
	}
	return false
}

// Enroll appends an enrollment for the course at the given time.
// Callers must check IsEnrolled first; duplicates are rejected upstream.
func (u *User) Enroll(courseID primitive.ObjectID, at time.Time) {
	u.Courses = append(u.Courses, Enrollment{CourseID: courseID, EnrolledAt: at})
}

// RefreshToken represents a refresh token for JWT authentication
type RefreshToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Token     string             `bson:"token" json:"token"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	Revoked   bool               `bson:"revoked" json:"revoked"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name for refresh tokens.
func (RefreshToken) CollectionName() string {
	return "refresh_tokens"
}

// IsExpired checks if the refresh token is expired
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsValid checks if the refresh token is valid
func (rt *RefreshToken) IsValid() bool {
	return !rt.Revoked && !rt.IsExpired()
}
