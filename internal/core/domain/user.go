package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/entity_audit_app/internal/apperrors"
)

// User represents a user of the application in the domain.
// Timestamps on the embedded AuditFields are owned by the persistence
// layer's audit listener; application code never assigns them directly.
type User struct {
	UserID   string `json:"userID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Username string `json:"username"`
	AuditFields
}

// NewUser constructs an unsaved User with validated name and username.
// The returned entity carries no timestamps until it is first persisted.
func NewUser(name, username string) (*User, error) {
	u := &User{}
	if _, err := u.SetName(name); err != nil {
		return nil, err
	}
	if _, err := u.SetUsername(username); err != nil {
		return nil, err
	}
	return u, nil
}

// SetName replaces the user's name, rejecting blank input. The prior value
// is left untouched on failure. Returns the receiver for chaining.
func (u *User) SetName(name string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name must not be blank: %w", apperrors.ErrValidation)
	}
	u.Name = name
	return u, nil
}

// SetUsername replaces the user's username, rejecting blank input. The prior
// value is left untouched on failure. Returns the receiver for chaining.
func (u *User) SetUsername(username string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username must not be blank: %w", apperrors.ErrValidation)
	}
	u.Username = username
	return u, nil
}
