package services

import (
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/object_dto/internal/core/ports/services"
)

// NewServiceContainer wires every service to its repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:    NewUserService(repos.UserRepo),
		Account: NewAccountService(repos.AccountRepo),
	}
}
