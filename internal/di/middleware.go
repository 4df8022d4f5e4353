package di

import (
	"go.uber.org/fx"

	"github.com/edumart/edumart-api/internal/middleware"
	"github.com/edumart/edumart-api/internal/security"
)

// MiddlewareModule provides middleware dependencies
var MiddlewareModule = fx.Module("middleware",
	fx.Provide(provideAuthMiddleware),
)

func provideAuthMiddleware(jwtProvider *security.JWTProvider) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtProvider)
}
