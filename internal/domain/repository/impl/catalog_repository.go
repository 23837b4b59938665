package impl

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
)

// catalogRepository implements repository.CatalogRepository by delegating
// to CatalogDAO.
type catalogRepository struct {
	dao dao.CatalogDAO
}

// NewCatalogRepository creates a new CatalogRepository instance.
func NewCatalogRepository(catalogDAO dao.CatalogDAO) repository.CatalogRepository {
	return &catalogRepository{dao: catalogDAO}
}

// CreateCategoryIfAbsent inserts a category unless its name is taken.
func (r *catalogRepository) CreateCategoryIfAbsent(ctx context.Context, category *entity.ServiceCategory) (bool, error) {
	return r.dao.InsertCategoryIfAbsent(ctx, category)
}

// CreateServiceIfAbsent inserts an additional service unless its
// (name, category) pair is taken.
func (r *catalogRepository) CreateServiceIfAbsent(ctx context.Context, service *entity.AdditionalService) (bool, error) {
	return r.dao.InsertServiceIfAbsent(ctx, service)
}

// ListCategories returns every service category.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	return r.dao.FindAllCategories(ctx)
}

// ListServices returns every additional service.
func (r *catalogRepository) ListServices(ctx context.Context) ([]*entity.AdditionalService, error) {
	return r.dao.FindAllServices(ctx)
}
