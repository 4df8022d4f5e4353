package di

import (
	"go.uber.org/fx"

	"github.com/edumart/edumart-api/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideServerConfig,
		provideMongoConfig,
		provideRedisConfig,
		provideJWTConfig,
		provideCacheConfig,
		provideSMTPConfig,
		provideStripeConfig,
		provideWebSocketConfig,
	),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideMongoConfig(cfg *config.Config) *config.MongoConfig {
	return &cfg.Mongo
}

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func provideCacheConfig(cfg *config.Config) *config.CacheConfig {
	return &cfg.Cache
}

func provideSMTPConfig(cfg *config.Config) *config.SMTPConfig {
	return &cfg.SMTP
}

func provideStripeConfig(cfg *config.Config) *config.StripeConfig {
	return &cfg.Stripe
}

func provideWebSocketConfig(cfg *config.Config) *config.WebSocketConfig {
	return &cfg.WebSocket
}
