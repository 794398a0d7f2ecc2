package services

import (
	portsrepo "github.com/SscSPs/entity_audit_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entity_audit_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}
	container.User = NewUserService(repos.UserRepo)
	return container
}
