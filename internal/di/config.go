package di

import (
	"go.uber.org/fx"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideServerConfig,
		provideDatabaseConfig,
		provideJWTConfig,
		provideUploadsConfig,
		provideAdminConfig,
	),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func provideUploadsConfig(cfg *config.Config) *config.UploadsConfig {
	return &cfg.Uploads
}

func provideAdminConfig(cfg *config.Config) *config.AdminConfig {
	return &cfg.Admin
}
