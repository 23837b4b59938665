package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
)

// claimsKey is the gin context key for the authenticated user claims
const claimsKey = "user_claims"

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	jwtProvider *security.JWTProvider
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(jwtProvider *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwtProvider: jwtProvider}
}

// Authenticate validates the JWT token and sets the claims in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, response.NewError[any]("authorization header required"))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, response.NewError[any]("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(parts[1])
		if err != nil {
			switch err {
			case security.ErrExpiredToken:
				c.JSON(http.StatusUnauthorized, response.NewError[any]("token has expired"))
			default:
				c.JSON(http.StatusUnauthorized, response.NewError[any]("invalid token"))
			}
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin checks that the authenticated user has the admin role
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, response.NewError[any]("authentication required"))
			c.Abort()
			return
		}
		if claims.Role != entity.RoleAdmin {
			c.JSON(http.StatusForbidden, response.NewError[any]("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the authenticated user claims from the context
func GetClaims(c *gin.Context) *security.UserClaims {
	if v, exists := c.Get(claimsKey); exists {
		if claims, ok := v.(*security.UserClaims); ok {
			return claims
		}
	}
	return nil
}
