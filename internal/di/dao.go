package di

import (
	"go.uber.org/fx"

	"github.com/edumart/edumart-api/internal/domain/dao"
	mongodao "github.com/edumart/edumart-api/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideUserDAO,
		provideRefreshTokenDAO,
		provideCourseDAO,
		provideCartDAO,
		provideOrderDAO,
		provideNotificationDAO,
		provideInvoiceDAO,
	),
)

func provideUserDAO(mongoDB *MongoDatabase) dao.UserDAO {
	return mongodao.NewUserDAO(mongoDB.DB)
}

func provideRefreshTokenDAO(mongoDB *MongoDatabase) dao.RefreshTokenDAO {
	return mongodao.NewRefreshTokenDAO(mongoDB.DB)
}

func provideCourseDAO(mongoDB *MongoDatabase) dao.CourseDAO {
	return mongodao.NewCourseDAO(mongoDB.DB)
}

func provideCartDAO(mongoDB *MongoDatabase) dao.CartDAO {
	return mongodao.NewCartDAO(mongoDB.DB)
}

func provideOrderDAO(mongoDB *MongoDatabase) dao.OrderDAO {
	return mongodao.NewOrderDAO(mongoDB.DB)
}

func provideNotificationDAO(mongoDB *MongoDatabase) dao.NotificationDAO {
	return mongodao.NewNotificationDAO(mongoDB.DB)
}

func provideInvoiceDAO(mongoDB *MongoDatabase) dao.InvoiceDAO {
	return mongodao.NewInvoiceDAO(mongoDB.DB)
}
