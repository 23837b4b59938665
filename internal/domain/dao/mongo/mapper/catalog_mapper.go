package mapper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// CatalogMapper converts between catalog entities and their documents.
type CatalogMapper struct{}

// NewCatalogMapper creates a new CatalogMapper instance.
func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

// CategoryToDocument converts a ServiceCategory entity to a document.
func (m *CatalogMapper) CategoryToDocument(category *entity.ServiceCategory) *document.CategoryDocument {
	if category == nil {
		return nil
	}

	doc := &document.CategoryDocument{
		Name:        category.Name,
		PricingMode: string(category.PricingMode),
		HourlyRate:  category.HourlyRate,
		BasePrice:   category.BasePrice,
		CreatedAt:   category.CreatedAt,
	}
	if category.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(category.ID); err == nil {
			doc.ID = oid
		}
	}
	return doc
}

// CategoryToEntity converts a CategoryDocument to an entity.
func (m *CatalogMapper) CategoryToEntity(doc *document.CategoryDocument) *entity.ServiceCategory {
	if doc == nil {
		return nil
	}

	return &entity.ServiceCategory{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		PricingMode: entity.PricingMode(doc.PricingMode),
		HourlyRate:  doc.HourlyRate,
		BasePrice:   doc.BasePrice,
		CreatedAt:   doc.CreatedAt,
	}
}

// CategoriesToEntities converts a slice of category documents.
func (m *CatalogMapper) CategoriesToEntities(docs []*document.CategoryDocument) []*entity.ServiceCategory {
	if docs == nil {
		return nil
	}
	categories := make([]*entity.ServiceCategory, len(docs))
	for i, doc := range docs {
		categories[i] = m.CategoryToEntity(doc)
	}
	return categories
}

// ServiceToDocument converts an AdditionalService entity to a document.
func (m *CatalogMapper) ServiceToDocument(service *entity.AdditionalService) *document.AdditionalServiceDocument {
	if service == nil {
		return nil
	}

	doc := &document.AdditionalServiceDocument{
		Name:        service.Name,
		Category:    service.Category,
		PricingMode: string(service.PricingMode),
		Amount:      service.Amount,
		CreatedAt:   service.CreatedAt,
	}
	if service.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(service.ID); err == nil {
			doc.ID = oid
		}
	}
	return doc
}

// ServiceToEntity converts an AdditionalServiceDocument to an entity.
func (m *CatalogMapper) ServiceToEntity(doc *document.AdditionalServiceDocument) *entity.AdditionalService {
	if doc == nil {
		return nil
	}

	return &entity.AdditionalService{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Category:    doc.Category,
		PricingMode: entity.PricingMode(doc.PricingMode),
		Amount:      doc.Amount,
		CreatedAt:   doc.CreatedAt,
	}
}

// ServicesToEntities converts a slice of additional-service documents.
func (m *CatalogMapper) ServicesToEntities(docs []*document.AdditionalServiceDocument) []*entity.AdditionalService {
	if docs == nil {
		return nil
	}
	services := make([]*entity.AdditionalService, len(docs))
	for i, doc := range docs {
		services[i] = m.ServiceToEntity(doc)
	}
	return services
}
