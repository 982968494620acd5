package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxDescriptionLength bounds the raw (untrimmed) task description.
const MaxDescriptionLength = 500

// Task is a validated domain entity owned by exactly one User. ID 0 means
// not yet persisted. Deleting the owning user deletes its tasks.
type Task struct {
	ID          int64
	Description string
	Status      TaskStatus
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask builds a Task, validating every rule eagerly before any
// persistence can be attempted. All failures wrap ErrInvalidEntity.
func NewTask(id int64, description string, status TaskStatus, userID int64, createdAt, updatedAt time.Time) (*Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: task description cannot be empty", ErrInvalidEntity)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: task description cannot exceed %d characters", ErrInvalidEntity, MaxDescriptionLength)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of TODO, DOING, DONE", ErrInvalidEntity)
	}
	if userID <= 0 {
		return nil, fmt.Errorf("%w: valid user_id is required", ErrInvalidEntity)
	}
	return &Task{
		ID:          id,
		Description: description,
		Status:      status,
		UserID:      userID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
