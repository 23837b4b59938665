// Package impl contains the service implementations.
package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/service"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/security"
)

type authService struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	jwt    *security.JWTProvider
	logger *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	users repository.UserRepository,
	hasher *security.PasswordHasher,
	jwtProvider *security.JWTProvider,
	logger *zap.Logger,
) service.AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		jwt:    jwtProvider,
		logger: logger,
	}
}

// Login verifies the credentials and issues an access token. Every
// failure mode collapses to ErrInvalidCredentials so responses do not
// leak whether a username exists.
func (s *authService) Login(ctx context.Context, username, password string) (*response.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, service.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.Password) {
		return nil, service.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))

	return &response.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwt.AccessTokenDuration().Seconds()),
		User:        response.NewUserInfo(user),
	}, nil
}
