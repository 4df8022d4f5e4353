package di

import (
	"go.uber.org/fx"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/security"
)

// SecurityModule provides security-related dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		provideJWTProvider,
		providePasswordHasher,
	),
)

func provideJWTProvider(cfg *config.JWTConfig) *security.JWTProvider {
	return security.NewJWTProvider(cfg)
}

func providePasswordHasher() security.PasswordHasher {
	return security.NewPasswordHasher()
}
