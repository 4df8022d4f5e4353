package impl

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/realtime"
	"github.com/edumart/edumart-api/internal/testutil/mocks"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

type courseServiceFixture struct {
	service          service.CourseService
	courseRepo       *mocks.MockCourseRepository
	userRepo         *mocks.MockUserRepository
	notificationRepo *mocks.MockNotificationRepository
	cache            *mocks.MockCourseCache
	broadcaster      *mocks.MockBroadcaster
}

func setupCourseService(t *testing.T) *courseServiceFixture {
	f := &courseServiceFixture{
		courseRepo:       mocks.NewMockCourseRepository(),
		userRepo:         mocks.NewMockUserRepository(),
		notificationRepo: mocks.NewMockNotificationRepository(),
		cache:            mocks.NewMockCourseCache(),
		broadcaster:      mocks.NewMockBroadcaster(),
	}
	f.service = NewCourseService(f.courseRepo, f.userRepo, f.notificationRepo, f.cache, f.broadcaster, zap.NewNop())
	return f
}

func (f *courseServiceFixture) seedCourse(t *testing.T) *entity.Course {
	t.Helper()
	course := &entity.Course{
		Name:  "Go Basics",
		Price: 49.99,
		Level: entity.LevelBeginner,
		Lessons: []entity.Lesson{{
			ID:       primitive.NewObjectID(),
			Title:    "Introduction",
			VideoURL: "https://cdn.example.com/intro.mp4",
		}},
	}
	if err := f.courseRepo.Create(context.Background(), course); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func (f *courseServiceFixture) seedUser(t *testing.T, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Student", Email: "student@example.com", Role: role}
	if err := f.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestCourseService_Create_BroadcastsWithoutContent(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()

	course, err := f.service.Create(ctx, &request.CreateCourseRequest{
		Name:  "Go Basics",
		Price: 49.99,
		Level: "beginner",
		Lessons: []request.LessonRequest{{
			Title:    "Introduction",
			VideoURL: "https://cdn.example.com/intro.mp4",
		}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if course.ID.IsZero() {
		t.Error("Create() did not assign an id")
	}

	if len(f.broadcaster.Broadcasts) != 1 {
		t.Fatalf("Create() broadcasts = %d, want 1", len(f.broadcaster.Broadcasts))
	}
	push := f.broadcaster.Broadcasts[0]
	if push.Event != realtime.EventNewCourse {
		t.Errorf("Create() event = %v, want newCourse", push.Event)
	}
	pushed, ok := push.Data.(*entity.Course)
	if !ok {
		t.Fatalf("Create() pushed %T, want *entity.Course", push.Data)
	}
	if len(pushed.Lessons) != 1 || pushed.Lessons[0].VideoURL != "" {
		t.Error("Create() pushed lesson media to the public channel")
	}
}

func TestCourseService_Edit_PartialUpdate(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)

	newPrice := 29.99
	edited, err := f.service.Edit(ctx, course.ID.Hex(), &request.EditCourseRequest{
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.Price != 29.99 {
		t.Errorf("Edit() price = %v, want 29.99", edited.Price)
	}
	if edited.Name != "Go Basics" {
		t.Errorf("Edit() name = %v, want unchanged", edited.Name)
	}
	if f.cache.Invalidations == 0 {
		t.Error("Edit() did not invalidate the cache")
	}
}

func TestCourseService_Edit_KeepsQuestionThreads(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)

	lessonID := course.Lessons[0].ID
	course.Lessons[0].Questions = []entity.Question{{
		ID:   primitive.NewObjectID(),
		Text: "What is a goroutine?",
	}}
	if err := f.courseRepo.Update(ctx, course); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	edited, err := f.service.Edit(ctx, course.ID.Hex(), &request.EditCourseRequest{
		Lessons: []request.LessonRequest{{
			ID:    lessonID.Hex(),
			Title: "Introduction, revised",
		}},
	})
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if len(edited.Lessons) != 1 {
		t.Fatalf("Edit() lessons = %d, want 1", len(edited.Lessons))
	}
	if edited.Lessons[0].Title != "Introduction, revised" {
		t.Errorf("Edit() title = %v, want revised", edited.Lessons[0].Title)
	}
	if len(edited.Lessons[0].Questions) != 1 {
		t.Error("Edit() dropped the lesson's question thread")
	}
}

func TestCourseService_GetPublic_HiddenCourse(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	course.IsHidden = true
	if err := f.courseRepo.Update(ctx, course); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	_, err := f.service.GetPublic(ctx, course.ID.Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetPublic() error = %v, want not found", err)
	}
}

func TestCourseService_GetPublic_StripsContentAndCaches(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)

	public, err := f.service.GetPublic(ctx, course.ID.Hex())
	if err != nil {
		t.Fatalf("GetPublic() error = %v", err)
	}
	if public.Lessons[0].VideoURL != "" {
		t.Error("GetPublic() leaked lesson media")
	}
	if public.Lessons[0].Title != "Introduction" {
		t.Error("GetPublic() dropped the lesson title")
	}

	cached, _ := f.cache.GetCourse(ctx, course.ID)
	if cached == nil {
		t.Error("GetPublic() did not populate the cache")
	}
}

func TestCourseService_GetPublic_ServesFromCache(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)

	if _, err := f.service.GetPublic(ctx, course.ID.Hex()); err != nil {
		t.Fatalf("GetPublic() error = %v", err)
	}

	// A repo failure is invisible while the entry is cached
	f.courseRepo.GetByIDErr = apperrors.ErrInternalError
	if _, err := f.service.GetPublic(ctx, course.ID.Hex()); err != nil {
		t.Errorf("GetPublic() cached read error = %v", err)
	}
}

func TestCourseService_GetContent_RequiresEnrollment(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	user := f.seedUser(t, entity.RoleUser)

	_, err := f.service.GetContent(ctx, user.ID.Hex(), course.ID.Hex())
	if !apperrors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("GetContent() error = %v, want forbidden", err)
	}

	user.Enroll(course.ID, time.Now())
	if err := f.userRepo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	full, err := f.service.GetContent(ctx, user.ID.Hex(), course.ID.Hex())
	if err != nil {
		t.Fatalf("GetContent() enrolled error = %v", err)
	}
	if full.Lessons[0].VideoURL == "" {
		t.Error("GetContent() stripped media for an enrolled user")
	}
}

func TestCourseService_GetContent_AdminBypassesEnrollment(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	admin := f.seedUser(t, entity.RoleAdmin)

	if _, err := f.service.GetContent(ctx, admin.ID.Hex(), course.ID.Hex()); err != nil {
		t.Errorf("GetContent() admin error = %v", err)
	}
}

func TestCourseService_ListPublic_SkipsHidden(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	f.seedCourse(t)
	hidden := &entity.Course{Name: "Secret", IsHidden: true}
	if err := f.courseRepo.Create(ctx, hidden); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	courses, err := f.service.ListPublic(ctx)
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("ListPublic() courses = %d, want 1", len(courses))
	}
}

func TestCourseService_AddLesson_Broadcasts(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)

	updated, err := f.service.AddLesson(ctx, course.ID.Hex(), &request.AddLessonRequest{
		Title:    "Channels",
		VideoURL: "https://cdn.example.com/channels.mp4",
	})
	if err != nil {
		t.Fatalf("AddLesson() error = %v", err)
	}
	if len(updated.Lessons) != 2 {
		t.Errorf("AddLesson() lessons = %d, want 2", len(updated.Lessons))
	}

	if len(f.broadcaster.Broadcasts) != 1 || f.broadcaster.Broadcasts[0].Event != realtime.EventNewLesson {
		t.Error("AddLesson() did not broadcast newLesson")
	}
}

func TestCourseService_AddReview_EnrolledOnly(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	user := f.seedUser(t, entity.RoleUser)

	_, err := f.service.AddReview(ctx, user.ID.Hex(), course.ID.Hex(), &request.AddReviewRequest{
		Rating:  5,
		Comment: "Great course",
	})
	if !apperrors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("AddReview() error = %v, want forbidden", err)
	}
}

func TestCourseService_AddReview_OnePerUser(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	user := f.seedUser(t, entity.RoleUser)
	user.Enroll(course.ID, time.Now())
	if err := f.userRepo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	reviewed, err := f.service.AddReview(ctx, user.ID.Hex(), course.ID.Hex(), &request.AddReviewRequest{
		Rating:  4,
		Comment: "Solid",
	})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	if reviewed.Ratings != 4 {
		t.Errorf("AddReview() ratings = %v, want 4", reviewed.Ratings)
	}
	if f.notificationRepo.AdminNotificationCount() != 1 {
		t.Error("AddReview() did not notify the admin desk")
	}

	_, err = f.service.AddReview(ctx, user.ID.Hex(), course.ID.Hex(), &request.AddReviewRequest{
		Rating:  5,
		Comment: "Changed my mind",
	})
	if !apperrors.Is(err, apperrors.ErrConflict) {
		t.Errorf("AddReview() second error = %v, want conflict", err)
	}
}

func TestCourseService_ReplyReview(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	admin := f.seedUser(t, entity.RoleAdmin)

	reviewID := primitive.NewObjectID()
	course.Reviews = []entity.Review{{ID: reviewID, Rating: 3, Comment: "Meh"}}
	if err := f.courseRepo.Update(ctx, course); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated, err := f.service.ReplyReview(ctx, admin.ID.Hex(), course.ID.Hex(), &request.ReplyReviewRequest{
		ReviewID: reviewID.Hex(),
		Text:     "Thanks for the feedback",
	})
	if err != nil {
		t.Fatalf("ReplyReview() error = %v", err)
	}
	if len(updated.Reviews[0].Replies) != 1 {
		t.Error("ReplyReview() did not attach the reply")
	}
}

func TestCourseService_AddQuestion_And_Answer(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)
	asker := f.seedUser(t, entity.RoleUser)
	asker.Enroll(course.ID, time.Now())
	if err := f.userRepo.Update(ctx, asker); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	admin := &entity.User{Name: "Admin", Email: "admin@example.com", Role: entity.RoleAdmin}
	if err := f.userRepo.Create(ctx, admin); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	lessonID := course.Lessons[0].ID

	withQuestion, err := f.service.AddQuestion(ctx, asker.ID.Hex(), course.ID.Hex(), &request.AddQuestionRequest{
		LessonID: lessonID.Hex(),
		Text:     "What is a goroutine?",
	})
	if err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}
	questions := withQuestion.Lessons[0].Questions
	if len(questions) != 1 {
		t.Fatalf("AddQuestion() questions = %d, want 1", len(questions))
	}

	answered, err := f.service.AddAnswer(ctx, admin.ID.Hex(), course.ID.Hex(), &request.AddAnswerRequest{
		LessonID:   lessonID.Hex(),
		QuestionID: questions[0].ID.Hex(),
		Text:       "A lightweight thread managed by the runtime.",
	})
	if err != nil {
		t.Fatalf("AddAnswer() error = %v", err)
	}
	if len(answered.Lessons[0].Questions[0].Answers) != 1 {
		t.Error("AddAnswer() did not attach the answer")
	}

	// The asker gets a personal notification about the reply
	personal, err := f.notificationRepo.ListByUserID(ctx, asker.ID)
	if err != nil {
		t.Fatalf("ListByUserID() error = %v", err)
	}
	if len(personal) != 1 {
		t.Errorf("AddAnswer() personal notifications = %d, want 1", len(personal))
	}
}

func TestCourseService_Delete_Invalidates(t *testing.T) {
	f := setupCourseService(t)
	ctx := context.Background()
	course := f.seedCourse(t)

	if err := f.service.Delete(ctx, course.ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	gone, _ := f.courseRepo.GetByID(ctx, course.ID)
	if gone != nil {
		t.Error("Delete() left the course in the repository")
	}
	if f.cache.Invalidations == 0 {
		t.Error("Delete() did not invalidate the cache")
	}
}
