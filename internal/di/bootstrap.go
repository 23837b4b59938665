package di

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/observability"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
)

// BootstrapModule provides the startup consistency pass. The pass runs
// before the HTTP server starts; a fatal outcome aborts the application.
var BootstrapModule = fx.Module("bootstrap",
	fx.Provide(
		provideUploadDir,
		provideAdminSeeder,
		provideSettingsSeeder,
		provideCatalogSeeder,
		provideSeedData,
		provideOrchestrator,
		runBootstrap,
	),
	fx.Invoke(func(result *bootstrap.Result) {}),
)

func provideUploadDir(cfg *config.UploadsConfig) *bootstrap.UploadDir {
	return bootstrap.NewUploadDir(afero.NewOsFs(), bootstrap.ResolveUploadDir(cfg.Root))
}

func provideAdminSeeder(
	users repository.UserRepository,
	hasher *security.PasswordHasher,
	logger *zap.Logger,
) *bootstrap.AdminSeeder {
	return bootstrap.NewAdminSeeder(users, hasher, logger)
}

func provideSettingsSeeder(settings repository.SettingsRepository, logger *zap.Logger) *bootstrap.SettingsSeeder {
	return bootstrap.NewSettingsSeeder(settings, logger)
}

func provideCatalogSeeder(catalog repository.CatalogRepository, logger *zap.Logger) *bootstrap.CatalogSeeder {
	return bootstrap.NewCatalogSeeder(catalog, logger)
}

func provideSeedData(cfg *config.Config) bootstrap.SeedData {
	return bootstrap.SeedData{
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		AdminEmail:    cfg.Admin.Email,
		Company:       config.DefaultCompanySettings(),
		Categories:    config.DefaultCategories(),
		Services:      config.DefaultAdditionalServices(),
	}
}

func provideOrchestrator(
	uploadDir *bootstrap.UploadDir,
	admin *bootstrap.AdminSeeder,
	settings *bootstrap.SettingsSeeder,
	catalog *bootstrap.CatalogSeeder,
	seed bootstrap.SeedData,
	logger *zap.Logger,
) *bootstrap.Orchestrator {
	return bootstrap.NewOrchestrator(uploadDir, admin, settings, catalog, seed, logger)
}

// runBootstrap executes the consistency pass, publishes the outcome as a
// metric and fails application startup on a fatal result.
func runBootstrap(
	orchestrator *bootstrap.Orchestrator,
	metrics *observability.MetricsProvider,
) (*bootstrap.Result, error) {
	result := orchestrator.Run(context.Background())
	metrics.SetBootstrapState(result.State)
	if err := result.Err(); err != nil {
		return nil, err
	}
	return &result, nil
}
