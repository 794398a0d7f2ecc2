package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/entity_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/entity_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entity_audit_app/internal/core/ports/services"
	"github.com/SscSPs/entity_audit_app/internal/dto"
)

// userService implements the user business operations on top of the
// persistence gateway. Audit timestamps are never assigned here: the
// gateway's audit listener owns them.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	user, err := domain.NewUser(req.Name, req.Username)
	if err != nil {
		return nil, err
	}

	saved, err := s.userRepo.SaveUser(ctx, *user)
	if err != nil {
		s.LogError(ctx, err, "Failed to save new user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", saved.UserID))
	return saved, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	changed := false
	if req.Name != nil && *req.Name != user.Name {
		if _, err := user.SetName(*req.Name); err != nil {
			return nil, err
		}
		changed = true
	}
	if req.Username != nil && *req.Username != user.Username {
		if _, err := user.SetUsername(*req.Username); err != nil {
			return nil, err
		}
		changed = true
	}

	// No-op updates skip the write entirely, so the modification timestamp
	// only advances when data actually changed.
	if !changed {
		s.LogDebug(ctx, "Update requested with no changes", slog.String("user_id", userID))
		return user, nil
	}

	updated, err := s.userRepo.UpdateUser(ctx, *user)
	if err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", updated.UserID))
	return updated, nil
}
