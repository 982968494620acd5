package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Now().UTC()

	u, err := NewUser(0, "Alice", "Johnson", "alice.johnson@example.com", now, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.ID)
	assert.Equal(t, "Alice", u.FirstName)
	assert.Equal(t, "Johnson", u.LastName)
	assert.Equal(t, "alice.johnson@example.com", u.Email)
	assert.Equal(t, now, u.CreatedAt)
	assert.Equal(t, now, u.UpdatedAt)
}

func TestNewUserKeepsRawValues(t *testing.T) {
	now := time.Now().UTC()

	// Only trimmed length is validated; the stored value is untouched.
	u, err := NewUser(0, "  Alice ", "Johnson", "Alice.Johnson@Example.COM", now, now)
	require.NoError(t, err)
	assert.Equal(t, "  Alice ", u.FirstName)
	assert.Equal(t, "Alice.Johnson@Example.COM", u.Email)
}

func TestNewUserValidation(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name              string
		first, last, mail string
	}{
		{"empty first name", "", "Johnson", "a@example.com"},
		{"whitespace first name", "   ", "Johnson", "a@example.com"},
		{"empty last name", "Alice", "", "a@example.com"},
		{"whitespace last name", "Alice", "\t ", "a@example.com"},
		{"empty email", "Alice", "Johnson", ""},
		{"whitespace email", "Alice", "Johnson", "   "},
		{"no at sign", "Alice", "Johnson", "bad-email"},
		{"no tld dot", "Alice", "Johnson", "a@b"},
		{"one char tld", "Alice", "Johnson", "a@example.c"},
		{"digit tld", "Alice", "Johnson", "a@example.12"},
		{"space in local part", "Alice", "Johnson", "a b@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(0, tt.first, tt.last, tt.mail, now, now)
			require.Nil(t, u)
			assert.ErrorIs(t, err, ErrInvalidEntity)
		})
	}
}

func TestNewUserAcceptsUppercaseEmail(t *testing.T) {
	now := time.Now().UTC()
	_, err := NewUser(0, "A", "B", "ALICE_1%+-@SUB.EXAMPLE.ORG", now, now)
	assert.NoError(t, err)
}

func TestNewUserLongNames(t *testing.T) {
	now := time.Now().UTC()
	long := strings.Repeat("x", 200)
	_, err := NewUser(0, long, long, "a@example.com", now, now)
	assert.NoError(t, err)
}
