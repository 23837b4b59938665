package dao

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// CatalogDAO provides access to the pricing catalog collections. Seeding
// methods are strictly additive: existing entries are never updated or
// deleted.
type CatalogDAO interface {
	// InsertCategoryIfAbsent inserts the category unless one with the
	// same name exists. Returns true when the insert happened.
	InsertCategoryIfAbsent(ctx context.Context, category *entity.ServiceCategory) (bool, error)

	// InsertServiceIfAbsent inserts the additional service unless one
	// with the same (name, category) exists. Returns true when the
	// insert happened.
	InsertServiceIfAbsent(ctx context.Context, service *entity.AdditionalService) (bool, error)

	FindAllCategories(ctx context.Context) ([]*entity.ServiceCategory, error)
	FindAllServices(ctx context.Context) ([]*entity.AdditionalService, error)
}
