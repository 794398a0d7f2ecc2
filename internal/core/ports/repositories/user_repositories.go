package repositories

import (
	"context"

	"github.com/SscSPs/entity_audit_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data. Implementations act as
// the persistence gateway: they invoke the registered audit listener
// synchronously and exactly once before each insert or update commits, and
// they must never write the created_at column on update.
type UserWriter interface {
	// SaveUser persists a new user, returning it with its generated ID and
	// audit timestamps populated.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser updates an existing user's details, returning the updated
	// entity with its refreshed modification timestamp.
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
