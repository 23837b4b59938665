package response

import (
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// CatalogResponse bundles the pricing catalog
type CatalogResponse struct {
	Categories         []*entity.ServiceCategory   `json:"categories"`
	AdditionalServices []*entity.AdditionalService `json:"additionalServices"`
}
