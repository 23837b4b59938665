package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	serviceimpl "github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service/impl"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideAuthService,
		provideSettingsService,
		provideCatalogService,
	),
)

func provideAuthService(
	userRepo repository.UserRepository,
	passwordHasher *security.PasswordHasher,
	jwtProvider *security.JWTProvider,
	logger *zap.Logger,
) service.AuthService {
	return serviceimpl.NewAuthService(userRepo, passwordHasher, jwtProvider, logger)
}

func provideSettingsService(
	settingsRepo repository.SettingsRepository,
	uploadDir *bootstrap.UploadDir,
	cfg *config.UploadsConfig,
	logger *zap.Logger,
) service.SettingsService {
	return serviceimpl.NewSettingsService(settingsRepo, uploadDir, *cfg, logger)
}

func provideCatalogService(catalogRepo repository.CatalogRepository) service.CatalogService {
	return serviceimpl.NewCatalogService(catalogRepo)
}
