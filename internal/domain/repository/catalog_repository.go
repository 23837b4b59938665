package repository

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// CatalogRepository provides access to the pricing catalog.
type CatalogRepository interface {
	CreateCategoryIfAbsent(ctx context.Context, category *entity.ServiceCategory) (bool, error)
	CreateServiceIfAbsent(ctx context.Context, service *entity.AdditionalService) (bool, error)
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)
	ListServices(ctx context.Context) ([]*entity.AdditionalService, error)
}
