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

// OrderController handles checkout and order endpoints
type OrderController struct {
	orderService   service.OrderService
	paymentService service.PaymentService
	auth           *middleware.AuthMiddleware
}

// NewOrderController creates a new OrderController instance
func NewOrderController(
	orderService service.OrderService,
	paymentService service.PaymentService,
	auth *middleware.AuthMiddleware,
) *OrderController {
	return &OrderController{
		orderService:   orderService,
		paymentService: paymentService,
		auth:           auth,
	}
}

// RegisterRoutes registers the order routes
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	authed := router.Group("", c.auth.Authenticate())
	{
		authed.POST("/create-mobile-order", c.CreateOrder)
		authed.POST("/payment", c.CreatePaymentIntent)
		authed.GET("/payment-intent/:id", c.GetPaymentIntent)
		authed.GET("/orders/me", c.ListMine)
		authed.GET("/orders/:id", c.GetByID)
	}

	router.GET("/orders", c.auth.Authenticate(), c.auth.RequireAdmin(), c.List)
}

// CreateOrder materializes an order from the caller's cart
// @Summary Create an order from the cart
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request.CreateOrderRequest true "Order request"
// @Success 201 {object} response.ApiResponse[entity.Order]
// @Failure 404 {object} response.ApiResponse[any]
// @Failure 409 {object} response.ApiResponse[any]
// @Router /api/v1/create-mobile-order [post]
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	order, err := c.orderService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(order, "Order created"))
}

// CreatePaymentIntent starts a payment with the gateway
func (c *OrderController) CreatePaymentIntent(ctx *gin.Context) {
	var req request.CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	intent, err := c.paymentService.CreateIntent(ctx.Request.Context(), req.Amount)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// flat payload, the mobile clients parse these fields directly
	ctx.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"client_secret":   intent.ClientSecret,
		"paymentIntentId": intent.ID,
		"message":         "Payment intent created",
	})
}

// GetPaymentIntent returns the current state of a payment
func (c *OrderController) GetPaymentIntent(ctx *gin.Context) {
	intent, err := c.paymentService.GetIntent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":              true,
		"id":                   intent.ID,
		"status":               intent.Status,
		"amount":               intent.Amount,
		"currency":             intent.Currency,
		"payment_method_types": intent.PaymentMethodTypes,
		"created":              intent.Created,
		"message":              "Payment intent retrieved",
	})
}

// ListMine returns the caller's orders
func (c *OrderController) ListMine(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	orders, err := c.orderService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(orders))
}

// GetByID returns one order visible to the caller
func (c *OrderController) GetByID(ctx *gin.Context) {
	userID, _ := security.GetCurrentUserID(ctx)

	order, err := c.orderService.GetByID(ctx.Request.Context(), userID, security.IsAdmin(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(order))
}

// List returns all orders with pagination
func (c *OrderController) List(ctx *gin.Context) {
	page, size := pageParams(ctx)

	orders, total, err := c.orderService.List(ctx.Request.Context(), page, size)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(response.NewPagedResponse(orders, page, size, total)))
}
