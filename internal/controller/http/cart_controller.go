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

// CartController handles cart endpoints
type CartController struct {
	cartService service.CartService
	auth        *middleware.AuthMiddleware
}

// NewCartController creates a new CartController instance
func NewCartController(cartService service.CartService, auth *middleware.AuthMiddleware) *CartController {
	return &CartController{
		cartService: cartService,
		auth:        auth,
	}
}

// RegisterRoutes registers the cart routes
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("", c.auth.Authenticate())
	{
		cart.POST("/add-to-cart", c.AddToCart)
		cart.POST("/remove-from-cart", c.RemoveFromCart)
		cart.GET("/get-cart", c.GetCart)
		cart.DELETE("/clear-cart", c.ClearCart)
	}
}

// AddToCart adds a course to the caller's cart
// @Summary Add a course to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body request.AddToCartRequest true "Course to add"
// @Success 200 {object} response.ApiResponse[entity.Cart]
// @Failure 404 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/add-to-cart [post]
func (c *CartController) AddToCart(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	cart, err := c.cartService.AddCourse(ctx.Request.Context(), userID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(cart, "Course added to cart"))
}

// RemoveFromCart removes a course from the caller's cart
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.RemoveFromCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	cart, err := c.cartService.RemoveCourse(ctx.Request.Context(), userID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(cart, "Course removed from cart"))
}

// GetCart returns the caller's cart
func (c *CartController) GetCart(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	cart, err := c.cartService.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(cart))
}

// ClearCart empties the caller's cart
func (c *CartController) ClearCart(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	cart, err := c.cartService.ClearCart(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(cart, "Cart cleared"))
}
