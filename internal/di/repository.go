package di

import (
	"go.uber.org/fx"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies.
// Repositories delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		provideUserRepository,
		provideSettingsRepository,
		provideCatalogRepository,
	),
)

func provideUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return impl.NewUserRepository(userDAO)
}

func provideSettingsRepository(settingsDAO dao.SettingsDAO) repository.SettingsRepository {
	return impl.NewSettingsRepository(settingsDAO)
}

func provideCatalogRepository(catalogDAO dao.CatalogDAO) repository.CatalogRepository {
	return impl.NewCatalogRepository(catalogDAO)
}
