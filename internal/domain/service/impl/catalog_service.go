package impl

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

type catalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(catalog repository.CatalogRepository) service.CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) GetCatalog(ctx context.Context) (*response.CatalogResponse, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return &response.CatalogResponse{
		Categories:         categories,
		AdditionalServices: services,
	}, nil
}
