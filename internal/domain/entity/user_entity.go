package entity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidEntity marks every construction-time validation failure.
// Callers match it with errors.Is; the wrapped message carries the reason.
var ErrInvalidEntity = errors.New("invalid entity")

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// User is a validated domain entity. ID 0 means the user has not been
// persisted yet; the storage adapter assigns it on create.
//
// Values are immutable once constructed: an update builds a new User
// through NewUser rather than mutating fields in place.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds a User, validating every rule eagerly. Either all rules
// pass and a fully-formed User is returned, or the error wraps
// ErrInvalidEntity and no User exists. Values are stored as given; only
// the trimmed length is checked, no normalization happens here.
func NewUser(id int64, firstName, lastName, email string, createdAt, updatedAt time.Time) (*User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("%w: first name cannot be empty", ErrInvalidEntity)
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: last name cannot be empty", ErrInvalidEntity)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidEntity)
	}
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidEntity)
	}
	return &User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
