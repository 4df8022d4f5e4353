package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/response"
	"github.com/edumart/edumart-api/internal/middleware"
	"github.com/edumart/edumart-api/internal/security"
)

// NotificationController handles notification endpoints
type NotificationController struct {
	notificationService service.NotificationService
	auth                *middleware.AuthMiddleware
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(
	notificationService service.NotificationService,
	auth *middleware.AuthMiddleware,
) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		auth:                auth,
	}
}

// RegisterRoutes registers the notification routes
func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/get-notifications", c.auth.Authenticate(), c.auth.RequireAdmin(), c.ListAll)
	router.GET("/get-notifications/me", c.auth.Authenticate(), c.ListMine)
	router.PUT("/update-notification/:id", c.auth.Authenticate(), c.MarkRead)
}

// ListAll returns every notification, newest first
func (c *NotificationController) ListAll(ctx *gin.Context) {
	notifications, err := c.notificationService.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(notifications))
}

// ListMine returns the caller's notifications
func (c *NotificationController) ListMine(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	notifications, err := c.notificationService.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(notifications))
}

// MarkRead marks a notification read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	n, err := c.notificationService.MarkRead(ctx.Request.Context(), userID, security.IsAdmin(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(n, "Notification marked read"))
}
