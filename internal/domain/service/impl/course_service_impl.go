package impl

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/realtime"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// courseService implements service.CourseService
type courseService struct {
	courseRepo       repository.CourseRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	cache            cache.CourseCache
	broadcaster      realtime.Broadcaster
	logger           *zap.Logger
}

// NewCourseService creates a new CourseService instance
func NewCourseService(
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	courseCache cache.CourseCache,
	broadcaster realtime.Broadcaster,
	logger *zap.Logger,
) service.CourseService {
	return &courseService{
		courseRepo:       courseRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		cache:            courseCache,
		broadcaster:      broadcaster,
		logger:           logger,
	}
}

func (s *courseService) Create(ctx context.Context, req *request.CreateCourseRequest) (*entity.Course, error) {
	course := &entity.Course{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		EstimatedPrice: req.EstimatedPrice,
		Tags:           req.Tags,
		Level:          entity.CourseLevel(req.Level),
		Thumbnail:      req.Thumbnail,
		DemoURL:        req.DemoURL,
		Benefits:       req.Benefits,
		Prerequisites:  req.Prerequisites,
		Lessons:        lessonsFromRequest(req.Lessons),
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)
	s.push(realtime.EventNewCourse, course.WithoutContent())

	return course, nil
}

func (s *courseService) Edit(ctx context.Context, id string, req *request.EditCourseRequest) (*entity.Course, error) {
	course, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Category != "" {
		course.Category = req.Category
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.EstimatedPrice != nil {
		course.EstimatedPrice = *req.EstimatedPrice
	}
	if req.Tags != nil {
		course.Tags = req.Tags
	}
	if req.Level != "" {
		course.Level = entity.CourseLevel(req.Level)
	}
	if req.Thumbnail != "" {
		course.Thumbnail = req.Thumbnail
	}
	if req.DemoURL != "" {
		course.DemoURL = req.DemoURL
	}
	if req.Benefits != nil {
		course.Benefits = req.Benefits
	}
	if req.Prerequisites != nil {
		course.Prerequisites = req.Prerequisites
	}
	if req.Lessons != nil {
		course.Lessons = mergeLessons(course.Lessons, lessonsFromRequest(req.Lessons))
	}
	if req.IsHidden != nil {
		course.IsHidden = *req.IsHidden
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	// Stale entries would serve the old price until TTL expiry
	s.invalidate(ctx, course.ID)
	s.push(realtime.EventCourseUpdated, course.WithoutContent())

	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	course, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, course.ID); err != nil {
		return err
	}

	s.invalidate(ctx, course.ID)
	return nil
}

func (s *courseService) GetPublic(ctx context.Context, id string) (*entity.Course, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if cached, err := s.cache.GetCourse(ctx, oid); err == nil && cached != nil {
		return cached, nil
	}

	course, err := s.courseRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if course == nil || course.IsHidden {
		return nil, apperrors.ErrNotFound.WithMessage("course not found")
	}

	public := course.WithoutContent()
	if err := s.cache.SetCourse(ctx, public); err != nil {
		s.logger.Warn("Failed to cache course", zap.Error(err))
	}

	return public, nil
}

func (s *courseService) GetContent(ctx context.Context, userID, courseID string) (*entity.Course, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.getByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleAdmin && !user.IsEnrolled(course.ID) {
		return nil, apperrors.ErrForbidden.WithMessage("you are not enrolled in this course")
	}

	return course, nil
}

func (s *courseService) ListPublic(ctx context.Context) ([]*entity.Course, error) {
	if cached, err := s.cache.GetCourseList(ctx); err == nil && cached != nil {
		return cached, nil
	}

	courses, err := s.courseRepo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]*entity.Course, 0, len(courses))
	for _, c := range courses {
		public = append(public, c.WithoutContent())
	}

	if err := s.cache.SetCourseList(ctx, public); err != nil {
		s.logger.Warn("Failed to cache course list", zap.Error(err))
	}

	return public, nil
}

func (s *courseService) ListAdmin(ctx context.Context, page, size int) ([]*entity.Course, int64, error) {
	return s.courseRepo.List(ctx, page, size)
}

func (s *courseService) AddLesson(ctx context.Context, courseID string, req *request.AddLessonRequest) (*entity.Course, error) {
	course, err := s.getByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	lesson := entity.Lesson{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		VideoLength: req.VideoLength,
		Questions:   []entity.Question{},
	}
	course.Lessons = append(course.Lessons, lesson)

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)
	s.push(realtime.EventNewLesson, map[string]any{
		"courseId":    course.ID.Hex(),
		"courseName":  course.Name,
		"lessonId":    lesson.ID.Hex(),
		"lessonTitle": lesson.Title,
	})

	return course, nil
}

func (s *courseService) AddReview(ctx context.Context, userID, courseID string, req *request.AddReviewRequest) (*entity.Course, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.getByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if !user.IsEnrolled(course.ID) {
		return nil, apperrors.ErrForbidden.WithMessage("only enrolled users can review a course")
	}

	for _, r := range course.Reviews {
		if r.UserID == user.ID {
			return nil, apperrors.ErrConflict.WithMessage("you have already reviewed this course")
		}
	}

	course.Reviews = append(course.Reviews, entity.Review{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Replies:   []entity.ReviewReply{},
		CreatedAt: time.Now(),
	})
	course.RecalculateRatings()

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)
	s.notifyAdmins(ctx, "New review", user.Name+" reviewed "+course.Name, course.ID)

	return course, nil
}

func (s *courseService) ReplyReview(ctx context.Context, adminID, courseID string, req *request.ReplyReviewRequest) (*entity.Course, error) {
	admin, err := s.getUser(ctx, adminID)
	if err != nil {
		return nil, err
	}

	course, err := s.getByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	reviewID, err := parseID(req.ReviewID)
	if err != nil {
		return nil, err
	}

	var review *entity.Review
	for i := range course.Reviews {
		if course.Reviews[i].ID == reviewID {
			review = &course.Reviews[i]
			break
		}
	}
	if review == nil {
		return nil, apperrors.ErrNotFound.WithMessage("review not found")
	}

	review.Replies = append(review.Replies, entity.ReviewReply{
		UserID:    admin.ID,
		UserName:  admin.Name,
		Text:      req.Text,
		CreatedAt: time.Now(),
	})

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)
	return course, nil
}

func (s *courseService) AddQuestion(ctx context.Context, userID, courseID string, req *request.AddQuestionRequest) (*entity.Course, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.getByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleAdmin && !user.IsEnrolled(course.ID) {
		return nil, apperrors.ErrForbidden.WithMessage("you are not enrolled in this course")
	}

	lessonID, err := parseID(req.LessonID)
	if err != nil {
		return nil, err
	}

	lesson := course.LessonByID(lessonID)
	if lesson == nil {
		return nil, apperrors.ErrNotFound.WithMessage("lesson not found")
	}

	lesson.Questions = append(lesson.Questions, entity.Question{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		UserName:  user.Name,
		Text:      req.Text,
		Answers:   []entity.Answer{},
		CreatedAt: time.Now(),
	})

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)
	s.notifyAdmins(ctx, "New question", user.Name+" asked a question in "+course.Name, course.ID)

	return course, nil
}

func (s *courseService) AddAnswer(ctx context.Context, userID, courseID string, req *request.AddAnswerRequest) (*entity.Course, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.getByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	lessonID, err := parseID(req.LessonID)
	if err != nil {
		return nil, err
	}
	questionID, err := parseID(req.QuestionID)
	if err != nil {
		return nil, err
	}

	lesson := course.LessonByID(lessonID)
	if lesson == nil {
		return nil, apperrors.ErrNotFound.WithMessage("lesson not found")
	}

	var question *entity.Question
	for i := range lesson.Questions {
		if lesson.Questions[i].ID == questionID {
			question = &lesson.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, apperrors.ErrNotFound.WithMessage("question not found")
	}

	question.Answers = append(question.Answers, entity.Answer{
		UserID:    user.ID,
		UserName:  user.Name,
		Text:      req.Text,
		CreatedAt: time.Now(),
	})

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.invalidate(ctx, course.ID)

	// Let the question owner know someone replied
	if question.UserID != user.ID {
		notification := &entity.Notification{
			UserID:   question.UserID,
			Title:    "Question answered",
			Message:  user.Name + " replied to your question in " + course.Name,
			Status:   entity.NotificationUnread,
			CourseID: &course.ID,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.logger.Warn("Failed to create answer notification", zap.Error(err))
		}
	}

	return course, nil
}

func (s *courseService) getByID(ctx context.Context, id string) (*entity.Course, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrNotFound.WithMessage("course not found")
	}
	return course, nil
}

func (s *courseService) getUser(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound.WithMessage("user not found")
	}
	return user, nil
}

func (s *courseService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.InvalidateCourse(ctx, id); err != nil {
		s.logger.Warn("Failed to invalidate course cache",
			zap.String("course_id", id.Hex()),
			zap.Error(err),
		)
	}
}

func (s *courseService) push(event string, data any) {
	if s.broadcaster != nil {
		s.broadcaster.PushBroadcast(event, data)
	}
}

func (s *courseService) notifyAdmins(ctx context.Context, title, message string, courseID primitive.ObjectID) {
	notification := &entity.Notification{
		Title:    title,
		Message:  message,
		Status:   entity.NotificationUnread,
		CourseID: &courseID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Warn("Failed to create admin notification", zap.Error(err))
	}
}

// mergeLessons carries question threads over from existing lessons
// whose IDs survive the edit
func mergeLessons(existing, updated []entity.Lesson) []entity.Lesson {
	byID := make(map[primitive.ObjectID][]entity.Question, len(existing))
	for _, l := range existing {
		byID[l.ID] = l.Questions
	}
	for i := range updated {
		if questions, ok := byID[updated[i].ID]; ok && questions != nil {
			updated[i].Questions = questions
		}
	}
	return updated
}

func lessonsFromRequest(reqs []request.LessonRequest) []entity.Lesson {
	lessons := make([]entity.Lesson, 0, len(reqs))
	for _, r := range reqs {
		lesson := entity.Lesson{
			Title:       r.Title,
			Description: r.Description,
			VideoURL:    r.VideoURL,
			VideoLength: r.VideoLength,
			Questions:   []entity.Question{},
		}
		if r.ID != "" {
			if oid, err := primitive.ObjectIDFromHex(r.ID); err == nil {
				lesson.ID = oid
			}
		}
		lessons = append(lessons, lesson)
	}
	return lessons
}
