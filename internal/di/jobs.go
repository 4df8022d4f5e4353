package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/jobs"
)

// JobsModule provides scheduled background jobs
var JobsModule = fx.Module("jobs",
	fx.Provide(provideTokenSweeper),
	fx.Invoke(startTokenSweeper),
)

func provideTokenSweeper(
	tokenRepo repository.RefreshTokenRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) *jobs.TokenSweeper {
	return jobs.NewTokenSweeper(tokenRepo, rdb, logger)
}

func startTokenSweeper(lc fx.Lifecycle, sweeper *jobs.TokenSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
