package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/internal/core/domain"
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/object_dto/internal/core/ports/services"
	"github.com/SscSPs/object_dto/internal/dto"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/google/uuid"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("unknown account type %q: %w", req.AccountType, apperrors.ErrValidation)
	}
	req.CurrencyCode = strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if len(req.CurrencyCode) != 3 {
		return nil, fmt.Errorf("currency code must have 3 letters, got %q: %w", req.CurrencyCode, apperrors.ErrValidation)
	}

	var account domain.Account
	if err := objectdto.ProjectInto(req, &account); err != nil {
		return nil, fmt.Errorf("failed to build account from request: %w", err)
	}

	account.AccountID = uuid.NewString()
	account.OwnerID = userID
	account.Balance = req.OpeningBalance
	account.IsActive = true
	account.AuditFields = domain.NewAuditFields(userID, time.Now())

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account in service: %w", err)
	}
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by ID in service: %w", err)
	}
	if account.OwnerID != userID {
		return nil, fmt.Errorf("account %s is not owned by %s: %w", accountID, userID, apperrors.ErrForbidden)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	limit, offset = normalizePage(limit, offset)
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	return accounts, nil
}
