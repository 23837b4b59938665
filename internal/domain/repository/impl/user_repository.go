// Package impl provides repository implementations that delegate to the
// DAO layer.
package impl

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/repository"
)

// userRepository implements repository.UserRepository by delegating to UserDAO.
type userRepository struct {
	dao dao.UserDAO
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return &userRepository{dao: userDAO}
}

// GetByUsername retrieves a user by their username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.dao.FindByUsername(ctx, username)
}

// CreateIfAbsent inserts a user unless the username is taken.
func (r *userRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error) {
	return r.dao.InsertIfAbsent(ctx, user)
}
