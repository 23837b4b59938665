package di

import (
	"go.uber.org/fx"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	mongodao "github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideUserDAO,
		provideSettingsDAO,
		provideCatalogDAO,
	),
)

func provideUserDAO(mongoDB *MongoDatabase) dao.UserDAO {
	return mongodao.NewUserDAO(mongoDB.DB)
}

func provideSettingsDAO(mongoDB *MongoDatabase) dao.SettingsDAO {
	return mongodao.NewSettingsDAO(mongoDB.DB)
}

func provideCatalogDAO(mongoDB *MongoDatabase) dao.CatalogDAO {
	return mongodao.NewCatalogDAO(mongoDB.DB)
}
