package entity

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCart_HasCourse(t *testing.T) {
	courseID := primitive.NewObjectID()
	cart := &Cart{Items: []CartItem{{CourseID: courseID}}}

	if !cart.HasCourse(courseID) {
		t.Error("HasCourse() = false for a carted course")
	}
	if cart.HasCourse(primitive.NewObjectID()) {
		t.Error("HasCourse() = true for an absent course")
	}
}

func TestCart_RemoveCourse(t *testing.T) {
	keep := primitive.NewObjectID()
	drop := primitive.NewObjectID()
	cart := &Cart{Items: []CartItem{{CourseID: keep}, {CourseID: drop}}}

	cart.RemoveCourse(drop)
	if len(cart.Items) != 1 || cart.Items[0].CourseID != keep {
		t.Errorf("RemoveCourse() items = %+v", cart.Items)
	}

	// Removing an absent course is a no-op
	cart.RemoveCourse(drop)
	if len(cart.Items) != 1 {
		t.Error("RemoveCourse() removed something on a second call")
	}
}

func TestCart_RemoveCourses(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()
	cart := &Cart{Items: []CartItem{{CourseID: a}, {CourseID: b}, {CourseID: c}}}

	cart.RemoveCourses([]primitive.ObjectID{a, c})
	if len(cart.Items) != 1 || cart.Items[0].CourseID != b {
		t.Errorf("RemoveCourses() items = %+v", cart.Items)
	}
}

func TestCourse_RecalculateRatings(t *testing.T) {
	course := &Course{}
	course.RecalculateRatings()
	if course.Ratings != 0 {
		t.Errorf("Ratings = %v, want 0 with no reviews", course.Ratings)
	}

	course.Reviews = []Review{{Rating: 4}, {Rating: 5}}
	course.RecalculateRatings()
	if course.Ratings != 4.5 {
		t.Errorf("Ratings = %v, want 4.5", course.Ratings)
	}
}

func TestCourse_WithoutContent(t *testing.T) {
	course := &Course{
		Name: "Go Basics",
		Lessons: []Lesson{{
			ID:          primitive.NewObjectID(),
			Title:       "Introduction",
			Description: "Getting started",
			VideoURL:    "https://cdn.example.com/intro.mp4",
			VideoLength: 600,
			Questions:   []Question{{Text: "hi"}},
		}},
	}

	public := course.WithoutContent()
	if public.Lessons[0].VideoURL != "" {
		t.Error("WithoutContent() kept the video URL")
	}
	if public.Lessons[0].Title != "Introduction" {
		t.Error("WithoutContent() dropped the lesson title")
	}
	if len(public.Lessons[0].Questions) != 0 {
		t.Error("WithoutContent() kept question threads")
	}

	// The original is untouched
	if course.Lessons[0].VideoURL == "" {
		t.Error("WithoutContent() mutated the receiver")
	}
}

func TestCourse_LessonByID(t *testing.T) {
	id := primitive.NewObjectID()
	course := &Course{Lessons: []Lesson{{ID: id, Title: "Introduction"}}}

	if lesson := course.LessonByID(id); lesson == nil || lesson.Title != "Introduction" {
		t.Error("LessonByID() did not find the lesson")
	}
	if course.LessonByID(primitive.NewObjectID()) != nil {
		t.Error("LessonByID() found a lesson for an unknown id")
	}
}

func TestUser_Enrollment(t *testing.T) {
	user := &User{}
	courseID := primitive.NewObjectID()

	if user.IsEnrolled(courseID) {
		t.Error("IsEnrolled() = true before enrollment")
	}

	user.Enroll(courseID, time.Now())
	if !user.IsEnrolled(courseID) {
		t.Error("IsEnrolled() = false after enrollment")
	}
}

func TestRefreshToken_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		token RefreshToken
		want  bool
	}{
		{"active", RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}, true},
		{"expired", RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}, false},
		{"revoked", RefreshToken{ExpiresAt: time.Now().Add(time.Hour), Revoked: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaymentInfo_Succeeded(t *testing.T) {
	if !(PaymentInfo{Status: PaymentStatusSucceeded}).Succeeded() {
		t.Error("Succeeded() = false for a succeeded payment")
	}
	if (PaymentInfo{Status: "requires_payment_method"}).Succeeded() {
		t.Error("Succeeded() = true for a pending payment")
	}
}
