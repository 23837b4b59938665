package response

import (
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// UserInfo is the public view of a user account
type UserInfo struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     entity.UserRole `json:"role"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"`
	User        UserInfo `json:"user"`
}

// NewUserInfo builds the public view of a user.
func NewUserInfo(user *entity.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
