package application

import (
	"errors"
	"fmt"
)

// NotFoundError is the single error kind that crosses the service boundary
// for every "referenced entity does not exist" case. Validation failures
// are entity.ErrInvalidEntity and propagate unchanged from construction.
// Name is set instead of ID when the lookup went by name.
type NotFoundError struct {
	Entity string
	ID     int64
	Name   string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s with name %s not found", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
