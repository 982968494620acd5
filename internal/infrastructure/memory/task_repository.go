package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	"github.com/oksasatya/taskboard-api/internal/domain/repository"
)

// errDuplicateEmail stands in for the Postgres unique-violation; it is a
// generic failure on purpose, the service layer does not translate it.
var errDuplicateEmail = errors.New("duplicate key value violates unique constraint \"ix_users_email\"")

type TaskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]*entity.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[int64]*entity.Task)}
}

func (r *TaskRepository) Create(_ context.Context, t *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *t
	stored.ID = r.nextID
	r.tasks[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *TaskRepository) Update(_ context.Context, t *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *t
	r.tasks[t.ID] = &stored
	out := stored
	return &out, nil
}

func (r *TaskRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tasks[id]
	delete(r.tasks, id)
	return ok, nil
}

func (r *TaskRepository) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (r *TaskRepository) GetByUserID(_ context.Context, userID int64) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]*entity.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			out := *t
			tasks = append(tasks, &out)
		}
	}
	sortByCreation(tasks)
	return tasks, nil
}

func (r *TaskRepository) GetAll(_ context.Context) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]*entity.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out := *t
		tasks = append(tasks, &out)
	}
	sortByCreation(tasks)
	return tasks, nil
}

func (r *TaskRepository) deleteByUserID(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tasks {
		if t.UserID == userID {
			delete(r.tasks, id)
		}
	}
}

func sortByCreation(tasks []*entity.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
