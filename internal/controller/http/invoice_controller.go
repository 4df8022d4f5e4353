package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/response"
	"github.com/edumart/edumart-api/internal/middleware"
)

// InvoiceController handles invoice endpoints. All routes are
// admin-only; invoices are issued manually from existing orders.
type InvoiceController struct {
	invoiceService service.InvoiceService
	auth           *middleware.AuthMiddleware
}

// NewInvoiceController creates a new InvoiceController instance
func NewInvoiceController(invoiceService service.InvoiceService, auth *middleware.AuthMiddleware) *InvoiceController {
	return &InvoiceController{
		invoiceService: invoiceService,
		auth:           auth,
	}
}

// RegisterRoutes registers the invoice routes
func (c *InvoiceController) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("", c.auth.Authenticate(), c.auth.RequireAdmin())
	{
		admin.POST("/create-invoice/:orderId", c.Create)
		admin.GET("/get-invoices", c.ListAll)
		admin.GET("/get-invoice/:invoiceId", c.GetByID)
		admin.DELETE("/delete-invoice/:invoiceId", c.Delete)
	}
}

// Create issues an invoice for an existing order
func (c *InvoiceController) Create(ctx *gin.Context) {
	invoice, err := c.invoiceService.CreateForOrder(ctx.Request.Context(), ctx.Param("orderId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(invoice, "Invoice created"))
}

// ListAll returns every invoice, newest first
func (c *InvoiceController) ListAll(ctx *gin.Context) {
	invoices, err := c.invoiceService.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(invoices))
}

// GetByID returns one invoice
func (c *InvoiceController) GetByID(ctx *gin.Context) {
	invoice, err := c.invoiceService.GetByID(ctx.Request.Context(), ctx.Param("invoiceId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithData(invoice))
}

// Delete removes an invoice
func (c *InvoiceController) Delete(ctx *gin.Context) {
	if err := c.invoiceService.Delete(ctx.Request.Context(), ctx.Param("invoiceId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Invoice deleted"))
}
