package di

import (
	"go.uber.org/fx"

	"github.com/edumart/edumart-api/internal/domain/dao"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies. Repositories
// delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		provideUserRepository,
		provideRefreshTokenRepository,
		provideCourseRepository,
		provideCartRepository,
		provideOrderRepository,
		provideNotificationRepository,
		provideInvoiceRepository,
	),
)

func provideUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return impl.NewUserRepository(userDAO)
}

func provideRefreshTokenRepository(tokenDAO dao.RefreshTokenDAO) repository.RefreshTokenRepository {
	return impl.NewRefreshTokenRepository(tokenDAO)
}

func provideCourseRepository(courseDAO dao.CourseDAO) repository.CourseRepository {
	return impl.NewCourseRepository(courseDAO)
}

func provideCartRepository(cartDAO dao.CartDAO) repository.CartRepository {
	return impl.NewCartRepository(cartDAO)
}

func provideOrderRepository(orderDAO dao.OrderDAO) repository.OrderRepository {
	return impl.NewOrderRepository(orderDAO)
}

func provideNotificationRepository(notificationDAO dao.NotificationDAO) repository.NotificationRepository {
	return impl.NewNotificationRepository(notificationDAO)
}

func provideInvoiceRepository(invoiceDAO dao.InvoiceDAO) repository.InvoiceRepository {
	return impl.NewInvoiceRepository(invoiceDAO)
}
