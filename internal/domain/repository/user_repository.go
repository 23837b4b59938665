// Package repository defines the persistence interfaces consumed by the
// service and bootstrap layers.
package repository

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	// GetByUsername returns the user with the given username, or nil
	// when absent.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// CreateIfAbsent inserts the user unless the username is taken,
	// returning true when the insert happened. Losing a concurrent
	// insert race counts as (false, nil).
	CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error)
}
