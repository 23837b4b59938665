package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// UserClaims represents the JWT claims for a signed-in user
type UserClaims struct {
	UserID   string          `json:"user_id"`
	Username string          `json:"username"`
	Role     entity.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider handles JWT token generation and validation
type JWTProvider struct {
	secret              []byte
	accessTokenDuration time.Duration
	issuer              string
}

// NewJWTProvider creates a new JWTProvider instance
func NewJWTProvider(cfg *config.JWTConfig) *JWTProvider {
	return &JWTProvider{
		secret:              []byte(cfg.Secret),
		accessTokenDuration: cfg.AccessTokenDuration,
		issuer:              cfg.Issuer,
	}
}

// AccessTokenDuration returns the configured access token lifetime
func (p *JWTProvider) AccessTokenDuration() time.Duration {
	return p.accessTokenDuration
}

// GenerateAccessToken generates a new access token for a user
func (p *JWTProvider) GenerateAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    p.issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.accessTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ValidateAccessToken parses and validates an access token
func (p *JWTProvider) ValidateAccessToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
