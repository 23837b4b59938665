// Package service defines the business service interfaces.
package service

import (
	"context"
	"errors"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/dto/response"
)

// ErrInvalidCredentials is returned for every login failure. Callers
// cannot distinguish an unknown username from a wrong password or a
// deactivated account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles authentication operations
type AuthService interface {
	// Login verifies the credentials and issues an access token.
	Login(ctx context.Context, username, password string) (*response.AuthResponse, error)
}
