// Package dao defines data access interfaces. Implementations live in the
// driver-specific subpackages.
package dao

import (
	"context"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// UserDAO provides access to the users collection.
type UserDAO interface {
	// FindByUsername returns the user with the given username, or nil if
	// no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// InsertIfAbsent inserts the user unless one with the same username
	// already exists. It returns true when the insert happened. A
	// duplicate-key rejection from a concurrent insert is reported as
	// (false, nil): the desired end state holds either way.
	InsertIfAbsent(ctx context.Context, user *entity.User) (bool, error)
}
