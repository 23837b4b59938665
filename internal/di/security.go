package di

import (
	"go.uber.org/fx"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
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

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher()
}
