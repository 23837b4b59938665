package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/request"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/middleware"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/observability"
)

// SettingsController handles the company settings endpoints
type SettingsController struct {
	settingsService service.SettingsService
	auth            *middleware.AuthMiddleware
	metrics         *observability.MetricsProvider
}

// NewSettingsController creates a new SettingsController instance
func NewSettingsController(
	settingsService service.SettingsService,
	auth *middleware.AuthMiddleware,
	metrics *observability.MetricsProvider,
) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		auth:            auth,
		metrics:         metrics,
	}
}

// RegisterRoutes registers the settings routes. Reads are public; every
// mutation requires an authenticated admin.
func (c *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("/company", c.GetCompanySettings)

		admin := settings.Group("", c.auth.Authenticate(), c.auth.RequireAdmin())
		{
			admin.GET("/full", c.GetFullSettings)
			admin.PUT("/company", c.UpdateCompanyInfo)
			admin.PUT("/theme", c.UpdateTheme)
			admin.PUT("/tax", c.UpdateTax)
			admin.PUT("/email", c.UpdateEmail)
			admin.POST("/logo", c.UploadLogo)
			admin.DELETE("/logo", c.DeleteLogo)
		}
	}
}

// GetCompanySettings returns the public company settings
// @Summary Get the public company settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.ApiResponse[response.CompanySettingsResponse]
// @Router /api/v1/settings/company [get]
func (c *SettingsController) GetCompanySettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetPublicSettings(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(settings))
}

// GetFullSettings returns the settings including the email section
// @Summary Get the full company settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.ApiResponse[entity.CompanySettings]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/settings/full [get]
func (c *SettingsController) GetFullSettings(ctx *gin.Context) {
	settings, err := c.settingsService.GetSettings(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccessWithData(settings))
}

// UpdateCompanyInfo applies a partial update of the basic company fields
// @Summary Update company name, addresses and default language
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request.UpdateCompanyRequest true "Company update"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/settings/company [put]
func (c *SettingsController) UpdateCompanyInfo(ctx *gin.Context) {
	var req request.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.settingsService.UpdateCompanyInfo(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Company settings updated"))
}

// UpdateTheme replaces the theme colors
// @Summary Update the theme colors
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request.UpdateThemeRequest true "Theme update"
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/settings/theme [put]
func (c *SettingsController) UpdateTheme(ctx *gin.Context) {
	var req request.UpdateThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.settingsService.UpdateTheme(ctx.Request.Context(), req.ToEntity()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Theme updated"))
}

// UpdateTax replaces the tax settings
// @Summary Update the tax settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request.UpdateTaxRequest true "Tax update"
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/settings/tax [put]
func (c *SettingsController) UpdateTax(ctx *gin.Context) {
	var req request.UpdateTaxRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.settingsService.UpdateTax(ctx.Request.Context(), req.ToEntity()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Tax settings updated"))
}

// UpdateEmail replaces the email settings
// @Summary Update the email settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request.UpdateEmailRequest true "Email update"
// @Success 200 {object} response.ApiResponse[any]
// @Router /api/v1/settings/email [put]
func (c *SettingsController) UpdateEmail(ctx *gin.Context) {
	var req request.UpdateEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	if err := c.settingsService.UpdateEmail(ctx.Request.Context(), req.ToEntity()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Email settings updated"))
}

// UploadLogo stores a new company logo
// @Summary Upload the company logo
// @Tags Settings
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo image (png, jpg, jpeg, webp)"
// @Success 200 {object} response.ApiResponse[response.LogoResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 413 {object} response.ApiResponse[any]
// @Router /api/v1/settings/logo [post]
func (c *SettingsController) UploadLogo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError[any]("file is required"))
		return
	}

	logoURL, err := c.settingsService.UploadLogo(ctx.Request.Context(), file)
	c.metrics.RecordUpload(err == nil)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess(response.LogoResponse{Logo: logoURL}, "Logo uploaded"))
}

// DeleteLogo removes the company logo
// @Summary Delete the company logo
// @Tags Settings
// @Produce json
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/v1/settings/logo [delete]
func (c *SettingsController) DeleteLogo(ctx *gin.Context) {
	if err := c.settingsService.DeleteLogo(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Logo deleted"))
}

