package di

import (
	"go.uber.org/fx"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/middleware"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
)

// MiddlewareModule provides middleware dependencies
var MiddlewareModule = fx.Module("middleware",
	fx.Provide(provideAuthMiddleware),
)

func provideAuthMiddleware(jwtProvider *security.JWTProvider) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtProvider)
}
