package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/realtime"
	"github.com/edumart/edumart-api/internal/security"
)

// RealtimeModule provides the WebSocket hub and handler
var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		provideHub,
		provideBroadcaster,
		provideWebSocketHandler,
	),
)

func provideHub(lc fx.Lifecycle, logger *zap.Logger) *realtime.Hub {
	hub := realtime.NewHub(logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go hub.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			hub.Stop()
			return nil
		},
	})

	return hub
}

func provideBroadcaster(hub *realtime.Hub) realtime.Broadcaster {
	return hub
}

func provideWebSocketHandler(
	cfg *config.WebSocketConfig,
	hub *realtime.Hub,
	jwtProvider *security.JWTProvider,
	logger *zap.Logger,
) *realtime.Handler {
	return realtime.NewHandler(cfg, hub, jwtProvider, logger)
}
