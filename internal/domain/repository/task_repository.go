package repository

import (
	"context"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
)

// TaskRepository defines the storage-agnostic contract for tasks.
type TaskRepository interface {
	// Create inserts the task and returns it with the store-assigned id.
	Create(ctx context.Context, t *entity.Task) (*entity.Task, error)
	// Update replaces all mutable fields of the row with the task's values
	// and returns ErrNotFound when the id does not exist.
	Update(ctx context.Context, t *entity.Task) (*entity.Task, error)
	// Delete is idempotent: a missing id yields (false, nil), not an error.
	Delete(ctx context.Context, id int64) (bool, error)
	// GetByID returns nil, nil when no task has the given id.
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	// GetByUserID returns an empty slice, never an error, for users
	// without tasks.
	GetByUserID(ctx context.Context, userID int64) ([]*entity.Task, error)
	// GetAll returns every task ordered by creation time ascending.
	GetAll(ctx context.Context) ([]*entity.Task, error)
}
