package pgsql

import (
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates PostgreSQL-backed repositories sharing one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:    NewUserRepository(pool),
		AccountRepo: NewAccountRepository(pool),
	}
}
