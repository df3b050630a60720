package memory

import portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"

// NewRepositoryProvider returns a provider backed entirely by process memory.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:    NewUserRepository(),
		AccountRepo: NewAccountRepository(),
	}
}
