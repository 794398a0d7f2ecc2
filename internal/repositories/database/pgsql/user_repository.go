package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/entity_audit_app/internal/apperrors"
	"github.com/SscSPs/entity_audit_app/internal/audit"
	"github.com/SscSPs/entity_audit_app/internal/core/domain"
	portsrepo "github.com/SscSPs/entity_audit_app/internal/core/ports/repositories"
	"github.com/SscSPs/entity_audit_app/internal/models"
	"github.com/SscSPs/entity_audit_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// PgxUserRepository is the PostgreSQL persistence gateway for users. It
// invokes the audit listener exactly once before each insert or update, and
// its UPDATE statement never references created_at, keeping that column
// immutable after the first insert.
type PgxUserRepository struct {
	db       *pgxpool.Pool
	listener audit.Listener
}

func newPgxUserRepository(db *pgxpool.Pool, listener audit.Listener) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db, listener: listener}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	r.listener.BeforeSave(&user.AuditFields, audit.OpInsert)

	modelUser := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, name, username, created_at, modified_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Username,
		modelUser.CreatedAt,
		modelUser.ModifiedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("username %q already taken: %w", user.Username, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, username, created_at, modified_at
		FROM users
		WHERE user_id = $1;
	`
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&modelUser.UserID,
		&modelUser.Name,
		&modelUser.Username,
		&modelUser.CreatedAt,
		&modelUser.ModifiedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	// Default limit if not specified or invalid
	if limit <= 0 {
		limit = 20
	}
	// Ensure offset is non-negative
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT user_id, name, username, created_at, modified_at
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		var modelUser models.User
		err := rows.Scan(
			&modelUser.UserID,
			&modelUser.Name,
			&modelUser.Username,
			&modelUser.CreatedAt,
			&modelUser.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, modelUser)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	r.listener.BeforeSave(&user.AuditFields, audit.OpUpdate)

	modelUser := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET name = $1, username = $2, modified_at = $3
        WHERE user_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelUser.Name,
		modelUser.Username,
		modelUser.ModifiedAt,
		modelUser.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("username %q already taken: %w", user.Username, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return &user, nil
}
