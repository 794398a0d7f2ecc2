package pgsql

import (
	"github.com/SscSPs/entity_audit_app/internal/audit"
	portsrepo "github.com/SscSPs/entity_audit_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories with the audit
// listener selected by configuration.
func NewRepositoryProvider(dbPool *pgxpool.Pool, listener audit.Listener) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo: newPgxUserRepository(dbPool, listener),
	}
}
