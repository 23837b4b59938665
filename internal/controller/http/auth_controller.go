// Package http contains the gin HTTP controllers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/request"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

const msgValidationFailed = "validation failed"

// AuthController handles authentication endpoints
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers the auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
	}
}

// Login handles user login
// @Summary Login with username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.ApiResponse[response.AuthResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return
	}

	authResp, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(authResp, "Login successful"))
}
