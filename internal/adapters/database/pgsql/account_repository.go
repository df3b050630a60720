package pgsql

import (
	"context"

	"github.com/SscSPs/object_dto/internal/core/domain"
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// balance is read as text so the decimal keeps its exact scale.
const accountColumns = `
    account_id AS "accountID", owner_id AS "ownerID", name,
    account_type AS "accountType", currency_code AS "currencyCode",
    is_active AS "isActive", balance::text AS balance,
    created_at AS "createdAt", created_by AS "createdBy",
    last_updated_at AS "lastUpdatedAt", last_updated_by AS "lastUpdatedBy"`

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &accountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

// SaveAccount inserts a new account.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, owner_id, name, account_type, currency_code, is_active, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (@accountID, @ownerID, @name, @accountType, @currencyCode, @isActive, @balance, @createdAt, @createdBy, @lastUpdatedAt, @lastUpdatedBy);
	`
	args := namedArgs(account)
	args["accountType"] = string(account.AccountType)
	args["balance"] = account.Balance.String()
	_, err := r.pool.Exec(ctx, query, args)
	return mapError(err, "failed to save account %s", account.AccountID)
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, mapError(err, "failed to query account %s", accountID)
	}
	account, err := decodeRow[domain.Account](rows)
	if err != nil {
		return nil, mapError(err, "failed to find account %s", accountID)
	}
	return account, nil
}

func (r *accountRepository) ListAccountsByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at, account_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to query accounts for owner %s", ownerID)
	}
	accounts, err := decodeRows[domain.Account](rows)
	if err != nil {
		return nil, mapError(err, "failed to scan account rows")
	}
	return accounts, nil
}
