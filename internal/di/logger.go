package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

func provideLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       "debug",
		Development: cfg.Debug,
		Encoding:    "console",
	})
}
