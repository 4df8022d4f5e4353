package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/domain/repository"
)

const (
	// Nightly at 03:00
	sweepSchedule = "0 3 * * *"

	sweepLockKey = "edumart:jobs:token-sweep:lock"
	sweepLockTTL = 10 * time.Minute

	sweepTimeout = 5 * time.Minute
)

// TokenSweeper periodically removes expired refresh tokens
type TokenSweeper struct {
	cron   *cron.Cron
	tokens repository.RefreshTokenRepository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewTokenSweeper creates a new TokenSweeper
func NewTokenSweeper(tokens repository.RefreshTokenRepository, rdb *redis.Client, logger *zap.Logger) *TokenSweeper {
	return &TokenSweeper{
		cron:   cron.New(),
		tokens: tokens,
		rdb:    rdb,
		logger: logger,
	}
}

// Start registers the sweep schedule and starts the cron loop
func (s *TokenSweeper) Start() error {
	if _, err := s.cron.AddFunc(sweepSchedule, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Token sweeper started", zap.String("schedule", sweepSchedule))
	return nil
}

// Stop stops the cron loop and waits for a running sweep to finish
func (s *TokenSweeper) Stop(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run performs one sweep, guarded by a redis lock so only one
// instance executes the sweep per schedule tick
func (s *TokenSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	acquired, err := s.rdb.SetNX(ctx, sweepLockKey, time.Now().Format(time.RFC3339), sweepLockTTL).Result()
	if err != nil {
		s.logger.Error("Failed to acquire sweep lock", zap.Error(err))
		return
	}
	if !acquired {
		s.logger.Debug("Sweep already running on another instance")
		return
	}

	deleted, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("Token sweep failed", zap.Error(err))
		return
	}

	s.logger.Info("Expired refresh tokens removed", zap.Int64("count", deleted))
}
