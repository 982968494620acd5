package entity

import "fmt"

// TaskStatus is the closed set of workflow states a task can be in.
type TaskStatus string

const (
	StatusTodo  TaskStatus = "TODO"
	StatusDoing TaskStatus = "DOING"
	StatusDone  TaskStatus = "DONE"
)

// ParseTaskStatus converts a wire/storage string into a TaskStatus,
// rejecting anything outside the enumeration.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusTodo, StatusDoing, StatusDone:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("%w: status must be one of TODO, DOING, DONE", ErrInvalidEntity)
}

func (s TaskStatus) String() string { return string(s) }

// Valid reports whether the status is one of the three known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}
