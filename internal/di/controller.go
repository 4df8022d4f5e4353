package di

import (
	"go.uber.org/fx"

	httpctrl "github.com/edumart/edumart-api/internal/controller/http"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/middleware"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		provideAuthController,
		provideUserController,
		provideCourseController,
		provideCartController,
		provideOrderController,
		provideNotificationController,
		provideInvoiceController,
	),
)

func provideAuthController(
	authService service.AuthService,
	auth *middleware.AuthMiddleware,
) *httpctrl.AuthController {
	return httpctrl.NewAuthController(authService, auth)
}

func provideUserController(
	userService service.UserService,
	auth *middleware.AuthMiddleware,
) *httpctrl.UserController {
	return httpctrl.NewUserController(userService, auth)
}

func provideCourseController(
	courseService service.CourseService,
	auth *middleware.AuthMiddleware,
) *httpctrl.CourseController {
	return httpctrl.NewCourseController(courseService, auth)
}

func provideCartController(
	cartService service.CartService,
	auth *middleware.AuthMiddleware,
) *httpctrl.CartController {
	return httpctrl.NewCartController(cartService, auth)
}

func provideOrderController(
	orderService service.OrderService,
	paymentService service.PaymentService,
	auth *middleware.AuthMiddleware,
) *httpctrl.OrderController {
	return httpctrl.NewOrderController(orderService, paymentService, auth)
}

func provideNotificationController(
	notificationService service.NotificationService,
	auth *middleware.AuthMiddleware,
) *httpctrl.NotificationController {
	return httpctrl.NewNotificationController(notificationService, auth)
}

func provideInvoiceController(
	invoiceService service.InvoiceService,
	auth *middleware.AuthMiddleware,
) *httpctrl.InvoiceController {
	return httpctrl.NewInvoiceController(invoiceService, auth)
}
