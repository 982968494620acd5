package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	repo "github.com/oksasatya/taskboard-api/internal/domain/repository"
)

// UserService needs the task repository too: deleting a user cascades its
// tasks away in the store, and their search documents have to go with them.
type UserService struct {
	Users  repo.UserRepository
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
	Index  *TaskIndex
}

func NewUserService(users repo.UserRepository, tasks repo.TaskRepository, logger *logrus.Logger, index *TaskIndex) *UserService {
	return &UserService{Users: users, Tasks: tasks, Logger: logger, Index: index}
}

// CreateUser constructs a validated user with fresh timestamps and persists
// it. A duplicate email surfaces as the store's own constraint violation,
// not as a domain error kind.
func (s *UserService) CreateUser(ctx context.Context, firstName, lastName, email string) (*entity.User, error) {
	now := time.Now().UTC()
	user, err := entity.NewUser(0, firstName, lastName, email, now, now)
	if err != nil {
		return nil, err
	}
	created, err := s.Users.Create(ctx, user)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, err
	}
	return created, nil
}

// DeleteUser checks existence first, then delegates to the repository's
// idempotent delete. The store cascades the user's tasks away; the cascade
// never surfaces their ids, so they are collected up front and their search
// documents removed once the delete has gone through.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, &NotFoundError{Entity: "User", ID: userID}
	}

	tasks, err := s.Tasks.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	deleted, err := s.Users.Delete(ctx, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		for _, t := range tasks {
			s.Index.Remove(ctx, t.ID)
		}
	}
	return deleted, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Users.GetAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User", ID: userID}
	}
	return user, nil
}

// GetUserByName is an exact, case-sensitive match on both names.
func (s *UserService) GetUserByName(ctx context.Context, firstName, lastName string) (*entity.User, error) {
	user, err := s.Users.GetByName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User", Name: firstName + " " + lastName}
	}
	return user, nil
}
