package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	repo "github.com/oksasatya/taskboard-api/internal/domain/repository"
)

// TaskService orchestrates the use cases that span both repositories.
// Referential integrity (a task must point at an existing user) is checked
// here, before the store's foreign key ever gets a chance to fire.
type TaskService struct {
	Tasks  repo.TaskRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
	Index  *TaskIndex
}

func NewTaskService(tasks repo.TaskRepository, users repo.UserRepository, logger *logrus.Logger, index *TaskIndex) *TaskService {
	return &TaskService{
		Tasks:  tasks,
		Users:  users,
		Logger: logger,
		Index:  index,
	}
}

// CreateTask verifies the owner exists, then constructs and persists a task
// with fresh timestamps. On a missing user no task is ever constructed.
func (s *TaskService) CreateTask(ctx context.Context, description string, status entity.TaskStatus, userID int64) (*entity.Task, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User", ID: userID}
	}

	now := time.Now().UTC()
	task, err := entity.NewTask(0, description, status, userID, now, now)
	if err != nil {
		return nil, err
	}

	created, err := s.Tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	s.Index.Index(ctx, created)
	return created, nil
}

// UpdateTask re-validates ownership even on update, so a task can be
// re-assigned to a different (existing) user. The original created_at is
// preserved; updated_at is refreshed.
func (s *TaskService) UpdateTask(ctx context.Context, taskID int64, description string, status entity.TaskStatus, userID int64) (*entity.Task, error) {
	existing, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Entity: "Task", ID: taskID}
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User", ID: userID}
	}

	task, err := entity.NewTask(taskID, description, status, userID, existing.CreatedAt, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	updated, err := s.Tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	s.Index.Index(ctx, updated)
	return updated, nil
}

// DeleteTask errors with NotFound on a missing id, unlike the repository's
// idempotent boolean. Both behaviors are intentional; the service is the
// stricter surface.
func (s *TaskService) DeleteTask(ctx context.Context, taskID int64) (bool, error) {
	existing, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, &NotFoundError{Entity: "Task", ID: taskID}
	}

	deleted, err := s.Tasks.Delete(ctx, taskID)
	if err != nil {
		return false, err
	}
	s.Index.Remove(ctx, taskID)
	return deleted, nil
}

// GetTasksByUser distinguishes "unknown user" (NotFound) from "known user
// with no tasks" (empty slice).
func (s *TaskService) GetTasksByUser(ctx context.Context, userID int64) ([]*entity.Task, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User", ID: userID}
	}
	return s.Tasks.GetByUserID(ctx, userID)
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]*entity.Task, error) {
	return s.Tasks.GetAll(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID int64) (*entity.Task, error) {
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Entity: "Task", ID: taskID}
	}
	return task, nil
}

// SearchTasks queries the search mirror; it never touches Postgres.
func (s *TaskService) SearchTasks(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.Index.Search(ctx, q, size)
}
