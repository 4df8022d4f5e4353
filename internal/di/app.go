package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/config"
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	DAOModule,
	RepositoryModule,
	SecurityModule,
	MiddlewareModule,
	PlatformModule,
	RealtimeModule,
	ServiceModule,
	ControllerModule,
	JobsModule,
	HTTPServerModule,
)

// PrintBanner logs application startup information
func PrintBanner(cfg *config.AppConfig, serverCfg *config.ServerConfig, logger *zap.Logger) {
	logger.Info("Application starting",
		zap.String("name", cfg.Name),
		zap.String("version", cfg.Version),
		zap.String("environment", cfg.Environment),
		zap.String("host", serverCfg.Host),
		zap.Int("port", serverCfg.Port),
		zap.Bool("debug", cfg.Debug),
	)
}
