// Package memory provides a map-backed persistence gateway. It honors the
// same contract as the PostgreSQL adapter: the audit listener runs
// synchronously, exactly once, before each insert or update is committed to
// the store, and a stored record's creation timestamp is never rewritten.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/entity_audit_app/internal/apperrors"
	"github.com/SscSPs/entity_audit_app/internal/audit"
	"github.com/SscSPs/entity_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/entity_audit_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// UserRepository is an in-memory persistence gateway for users, used in
// tests and for database-less local runs.
type UserRepository struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	byName   map[string]string // username -> userID
	listener audit.Listener
}

// NewUserRepository creates an empty in-memory gateway with the given audit
// listener.
func NewUserRepository(listener audit.Listener) *UserRepository {
	return &UserRepository{
		users:    make(map[string]domain.User),
		byName:   make(map[string]string),
		listener: listener,
	}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// NewRepositoryProvider bundles the in-memory repositories.
func NewRepositoryProvider(listener audit.Listener) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo: NewUserRepository(listener),
	}
}

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	if _, taken := r.byName[user.Username]; taken {
		return nil, fmt.Errorf("username %q already taken: %w", user.Username, apperrors.ErrDuplicate)
	}

	r.listener.BeforeSave(&user.AuditFields, audit.OpInsert)

	r.users[user.UserID] = user
	r.byName[user.Username] = user.UserID
	return &user, nil
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindUsers(_ context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	// Newest first, matching the SQL adapter's ordering.
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *UserRepository) UpdateUser(_ context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.UserID]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	if ownerID, taken := r.byName[user.Username]; taken && ownerID != user.UserID {
		return nil, fmt.Errorf("username %q already taken: %w", user.Username, apperrors.ErrDuplicate)
	}

	// created_at is non-updatable: whatever the caller carries, the stored
	// value wins.
	user.CreatedAt = stored.CreatedAt
	r.listener.BeforeSave(&user.AuditFields, audit.OpUpdate)

	if stored.Username != user.Username {
		delete(r.byName, stored.Username)
		r.byName[user.Username] = user.UserID
	}
	r.users[user.UserID] = user
	return &user, nil
}
