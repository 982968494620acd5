// Package memory provides map-backed implementations of the repository
// ports. They keep the same behavioral contract as the Postgres adapters
// (absence as nil, idempotent delete, cascade from user to tasks) so that
// services and handlers can be tested without a database.
package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	"github.com/oksasatya/taskboard-api/internal/domain/repository"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*entity.User

	// tasks, when set, receives the cascade on user delete the way the
	// tasks.user_id foreign key would in Postgres.
	tasks *TaskRepository
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]*entity.User)}
}

// WithCascadeTo wires the task repository that loses rows when a user goes.
func (r *UserRepository) WithCascadeTo(tasks *TaskRepository) *UserRepository {
	r.tasks = tasks
	return r
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, errDuplicateEmail
		}
	}
	r.nextID++
	stored := *u
	stored.ID = r.nextID
	r.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	_, ok := r.users[id]
	delete(r.users, id)
	r.mu.Unlock()
	if ok && r.tasks != nil {
		r.tasks.deleteByUserID(id)
	}
	return ok, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) GetByName(_ context.Context, firstName, lastName string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.FirstName == firstName && u.LastName == lastName {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*entity.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out := *u
			users = append(users, &out)
		}
	}
	return users, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
