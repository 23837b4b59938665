package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

// CatalogController exposes the pricing catalog endpoints
type CatalogController struct {
	catalogService service.CatalogService
}

// NewCatalogController creates a new CatalogController instance
func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// RegisterRoutes registers the catalog routes
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", c.GetCatalog)
}

// GetCatalog returns all service categories and additional services
// @Summary Get the pricing catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.ApiResponse[response.CatalogResponse]
// @Router /api/v1/catalog [get]
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	catalog, err := c.catalogService.GetCatalog(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(catalog))
}
