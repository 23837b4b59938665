// Package di wires the application together with fx.
package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	DAOModule,        // DAO layer (between Database and Repository)
	RepositoryModule, // Repository layer (delegates to DAO)
	SecurityModule,
	ObservabilityModule,
	BootstrapModule, // Startup consistency pass
	ServiceModule,
	MiddlewareModule,
	ControllerModule,
	HTTPServerModule,
)

// PrintBanner prints the application startup banner
func PrintBanner(cfg *config.Config, logger *zap.Logger) {
	logger.Info("===========================================")
	logger.Info("        Umzug Cloud Go - Backend           ")
	logger.Info("===========================================")
	logger.Info("Application Info",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	logger.Info("===========================================")
}
