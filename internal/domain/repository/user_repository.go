package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
)

// ErrNotFound is returned by write operations that require an existing row.
// Read operations signal a miss with a nil entity and a nil error instead.
var ErrNotFound = errors.New("entity not found")

// UserRepository defines the storage-agnostic contract for users.
type UserRepository interface {
	// Create inserts the user and returns it with the store-assigned id.
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	// Delete removes the user (and, through the store's cascade, its tasks).
	// A missing id is not an error; the bool reports whether a row went away.
	Delete(ctx context.Context, id int64) (bool, error)
	// GetByID returns nil, nil when no user has the given id.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByName matches first and last name exactly, case-sensitive.
	GetByName(ctx context.Context, firstName, lastName string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
}
