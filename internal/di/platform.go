package di

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/checkout"
	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/mailer"
	"github.com/edumart/edumart-api/internal/observability"
	"github.com/edumart/edumart-api/internal/payment"
)

// PlatformModule provides the cache, checkout lock, payment gateway,
// mail transport and metrics dependencies
var PlatformModule = fx.Module("platform",
	fx.Provide(
		provideCourseCache,
		provideCheckoutLocker,
		providePaymentGateway,
		provideMailer,
		provideMetricsProvider,
	),
)

func provideCourseCache(client *redis.Client, cfg *config.CacheConfig) cache.CourseCache {
	return cache.NewCourseCache(client, cfg.CourseTTL)
}

func provideCheckoutLocker(client *redis.Client) checkout.Locker {
	return checkout.NewLocker(client)
}

func providePaymentGateway(cfg *config.StripeConfig) payment.Gateway {
	return payment.NewStripeGateway(cfg.SecretKey, cfg.Currency)
}

func provideMailer(cfg *config.SMTPConfig) (mailer.Mailer, error) {
	return mailer.NewSMTPMailer(cfg)
}

func provideMetricsProvider(logger *zap.Logger) *observability.MetricsProvider {
	return observability.NewMetricsProvider(logger)
}
