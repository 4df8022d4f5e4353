package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/dto/response"
	"github.com/edumart/edumart-api/internal/middleware"
	"github.com/edumart/edumart-api/internal/security"
)

// CourseController handles catalog endpoints
type CourseController struct {
	courseService service.CourseService
	auth          *middleware.AuthMiddleware
}

// NewCourseController creates a new CourseController instance
func NewCourseController(courseService service.CourseService, auth *middleware.AuthMiddleware) *CourseController {
	return &CourseController{
		courseService: courseService,
		auth:          auth,
	}
}

// RegisterRoutes registers the catalog routes
func (c *CourseController) RegisterRoutes(router *gin.RouterGroup) {
	courses := router.Group("/courses")
	{
		courses.GET("", c.ListPublic)
		courses.GET("/:id", c.GetPublic)

		authed := courses.Group("", c.auth.Authenticate())
		{
			authed.GET("/:id/content", c.GetContent)
			authed.POST("/:id/reviews", c.AddReview)
			authed.POST("/:id/questions", c.AddQuestion)
			authed.POST("/:id/answers", c.AddAnswer)
		}

		admin := courses.Group("", c.auth.Authenticate(), c.auth.RequireAdmin())
		{
			admin.POST("", c.Create)
			admin.PUT("/:id", c.Edit)
			admin.DELETE("/:id", c.Delete)
			admin.POST("/:id/lessons", c.AddLesson)
			admin.POST("/:id/reviews/reply", c.ReplyReview)
		}
	}

	router.GET("/admin/courses", c.auth.Authenticate(), c.auth.RequireAdmin(), c.ListAdmin)
}

// ListPublic returns all visible courses without lesson media
// @Summary List catalog courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.ApiResponse[[]entity.Course]
// @Router /api/v1/courses [get]
func (c *CourseController) ListPublic(ctx *gin.Context) {
	courses, err := c.courseService.ListPublic(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(courses))
}

// GetPublic returns a single course without lesson media
func (c *CourseController) GetPublic(ctx *gin.Context) {
	course, err := c.courseService.GetPublic(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(course))
}

// GetContent returns full course content for an enrolled user
func (c *CourseController) GetContent(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	course, err := c.courseService.GetContent(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(course))
}

// Create adds a course to the catalog
func (c *CourseController) Create(ctx *gin.Context) {
	var req request.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Course created"))
}

// Edit updates a course
func (c *CourseController) Edit(ctx *gin.Context) {
	var req request.EditCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.Edit(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(course, "Course updated"))
}

// Delete removes a course from the catalog
func (c *CourseController) Delete(ctx *gin.Context) {
	if err := c.courseService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Course deleted"))
}

// ListAdmin returns all courses with pagination
func (c *CourseController) ListAdmin(ctx *gin.Context) {
	page, size := pageParams(ctx)

	courses, total, err := c.courseService.ListAdmin(ctx.Request.Context(), page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewPagedResponse(courses, page, size, total)))
}

// AddLesson appends a lesson to a course
func (c *CourseController) AddLesson(ctx *gin.Context) {
	var req request.AddLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.AddLesson(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Lesson added"))
}

// AddReview attaches a review from an enrolled user
func (c *CourseController) AddReview(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.AddReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.AddReview(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Review added"))
}

// ReplyReview attaches an admin reply to a review
func (c *CourseController) ReplyReview(ctx *gin.Context) {
	adminID, _ := security.GetCurrentUserID(ctx)

	var req request.ReplyReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.ReplyReview(ctx.Request.Context(), adminID, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Reply added"))
}

// AddQuestion opens a question thread on a lesson
func (c *CourseController) AddQuestion(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.AddQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.AddQuestion(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Question added"))
}

// AddAnswer replies to a question thread
func (c *CourseController) AddAnswer(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.AddAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	course, err := c.courseService.AddAnswer(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(course, "Answer added"))
}
