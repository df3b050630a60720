package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/internal/core/domain"
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
)

type accountRepository struct {
	docs *documentStore[domain.Account]
}

// NewAccountRepository creates an in-memory account repository.
func NewAccountRepository() portsrepo.AccountRepositoryFacade {
	return &accountRepository{docs: newDocumentStore[domain.Account]()}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if r.docs.exists(account.AccountID) {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}
	r.docs.put(account.AccountID, account)
	return nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := r.docs.get(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

func (r *accountRepository) ListAccountsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := r.docs.scan(func(a domain.Account) bool { return a.OwnerID == ownerID })
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for %s: %w", ownerID, err)
	}
	return page(accounts, limit, offset), nil
}
