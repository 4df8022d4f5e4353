package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/dto/response"
	"github.com/edumart/edumart-api/internal/middleware"
	"github.com/edumart/edumart-api/internal/security"
)

// UserController handles user account endpoints
type UserController struct {
	userService service.UserService
	auth        *middleware.AuthMiddleware
}

// NewUserController creates a new UserController instance
func NewUserController(userService service.UserService, auth *middleware.AuthMiddleware) *UserController {
	return &UserController{
		userService: userService,
		auth:        auth,
	}
}

// RegisterRoutes registers the user routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/users/me", c.auth.Authenticate())
	{
		me.GET("", c.GetProfile)
		me.PUT("", c.UpdateProfile)
		me.PUT("/password", c.ChangePassword)
	}

	admin := router.Group("/users", c.auth.Authenticate(), c.auth.RequireAdmin())
	{
		admin.GET("", c.List)
		admin.GET("/:id", c.GetByID)
		admin.PUT("/:id/role", c.UpdateRole)
		admin.PUT("/:id/ban", c.SetBanned)
		admin.DELETE("/:id", c.Delete)
	}
}

// GetProfile returns the authenticated user's account
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	user, err := c.userService.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewUserResponse(user)))
}

// UpdateProfile updates the authenticated user's profile fields
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(response.NewUserResponse(user), "Profile updated"))
}

// ChangePassword changes the authenticated user's password
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.userService.ChangePassword(ctx.Request.Context(), userID, &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Password changed"))
}

// List returns users with pagination
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} response.ApiResponse[response.PagedResponse[response.UserResponse]]
// @Router /api/v1/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, size := pageParams(ctx)

	users, total, err := c.userService.List(ctx.Request.Context(), page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, response.NewUserResponse(u))
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewPagedResponse(items, page, size, total)))
}

// GetByID returns a single user account
func (c *UserController) GetByID(ctx *gin.Context) {
	user, err := c.userService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewUserResponse(user)))
}

// UpdateRole changes a user's role
func (c *UserController) UpdateRole(ctx *gin.Context) {
	var req request.UpdateUserRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	user, err := c.userService.UpdateRole(ctx.Request.Context(), ctx.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(response.NewUserResponse(user), "Role updated"))
}

// SetBanned sets a user's banned flag
func (c *UserController) SetBanned(ctx *gin.Context) {
	var req request.BanUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	user, err := c.userService.SetBanned(ctx.Request.Context(), ctx.Param("id"), req.Banned)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(response.NewUserResponse(user), "Ban flag updated"))
}

// Delete soft-deletes a user account
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.userService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "User deleted"))
}
