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

// AuthController handles authentication endpoints
type AuthController struct {
	authService service.AuthService
	auth        *middleware.AuthMiddleware
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService service.AuthService, auth *middleware.AuthMiddleware) *AuthController {
	return &AuthController{
		authService: authService,
		auth:        auth,
	}
}

// RegisterRoutes registers the auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
		auth.POST("/refresh", c.Refresh)
		auth.POST("/logout", c.Logout)
		auth.POST("/logout-all", c.auth.Authenticate(), c.LogoutAll)
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Registration request"
// @Success 201 {object} response.ApiResponse[response.AuthResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	authResp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setTokenHeaders(ctx, authResp)
	ctx.JSON(http.StatusCreated, response.NewSuccess(authResp, "User registered successfully"))
}

// Login handles user login
// @Summary Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	authResp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setTokenHeaders(ctx, authResp)
	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Login successful"))
}

// Refresh rotates the refresh token presented in the refresh-token header
// @Summary Refresh access token
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	refreshToken := ctx.GetHeader("refresh-token")
	if refreshToken == "" {
		ctx.JSON(http.StatusUnauthorized, response.NewError[any]("refresh token required"))
		return
	}

	authResp, err := c.authService.Refresh(ctx.Request.Context(), refreshToken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	setTokenHeaders(ctx, authResp)
	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Token refreshed successfully"))
}

// Logout revokes the presented refresh token
func (c *AuthController) Logout(ctx *gin.Context) {
	refreshToken := ctx.GetHeader("refresh-token")
	if refreshToken != "" {
		_ = c.authService.Logout(ctx.Request.Context(), refreshToken)
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Logged out successfully"))
}

// LogoutAll revokes every session of the authenticated user
func (c *AuthController) LogoutAll(ctx *gin.Context) {
	userID, ok := security.GetCurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.NewError[any]("authentication required"))
		return
	}

	if err := c.authService.LogoutAll(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "All sessions revoked"))
}

// setTokenHeaders mirrors the issued tokens into response headers so
// clients can read them without parsing the body
func setTokenHeaders(ctx *gin.Context, authResp *response.AuthResponse) {
	ctx.Header("access-token", authResp.AccessToken)
	ctx.Header("refresh-token", authResp.RefreshToken)
}
