package service

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

// CatalogService exposes the pricing catalog
type CatalogService interface {
	// GetCatalog returns all service categories and additional services.
	GetCatalog(ctx context.Context) (*response.CatalogResponse, error)
}
