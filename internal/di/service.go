package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/checkout"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	serviceimpl "github.com/edumart/edumart-api/internal/domain/service/impl"
	"github.com/edumart/edumart-api/internal/mailer"
	"github.com/edumart/edumart-api/internal/observability"
	"github.com/edumart/edumart-api/internal/payment"
	"github.com/edumart/edumart-api/internal/realtime"
	"github.com/edumart/edumart-api/internal/security"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideAuthService,
		provideUserService,
		provideCourseService,
		provideCartService,
		provideOrderService,
		providePaymentService,
		provideNotificationService,
		provideInvoiceService,
	),
)

func provideAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher security.PasswordHasher,
	courseCache cache.CourseCache,
) service.AuthService {
	return serviceimpl.NewAuthService(userRepo, tokenRepo, jwtProvider, passwordHasher, courseCache)
}

func provideUserService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	passwordHasher security.PasswordHasher,
	courseCache cache.CourseCache,
) service.UserService {
	return serviceimpl.NewUserService(userRepo, tokenRepo, passwordHasher, courseCache)
}

func provideCourseService(
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	courseCache cache.CourseCache,
	broadcaster realtime.Broadcaster,
	logger *zap.Logger,
) service.CourseService {
	return serviceimpl.NewCourseService(courseRepo, userRepo, notificationRepo, courseCache, broadcaster, logger)
}

func provideCartService(
	cartRepo repository.CartRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	broadcaster realtime.Broadcaster,
	logger *zap.Logger,
) service.CartService {
	return serviceimpl.NewCartService(cartRepo, courseRepo, userRepo, broadcaster, logger)
}

func provideOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	locker checkout.Locker,
	courseCache cache.CourseCache,
	gateway payment.Gateway,
	mail mailer.Mailer,
	broadcaster realtime.Broadcaster,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) service.OrderService {
	return serviceimpl.NewOrderService(
		orderRepo, cartRepo, courseRepo, userRepo, notificationRepo,
		locker, courseCache, gateway, mail, broadcaster, metrics, logger,
	)
}

func providePaymentService(gateway payment.Gateway) service.PaymentService {
	return serviceimpl.NewPaymentService(gateway)
}

func provideNotificationService(
	notificationRepo repository.NotificationRepository,
	broadcaster realtime.Broadcaster,
) service.NotificationService {
	return serviceimpl.NewNotificationService(notificationRepo, broadcaster)
}

func provideInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) service.InvoiceService {
	return serviceimpl.NewInvoiceService(invoiceRepo, orderRepo, userRepo)
}
