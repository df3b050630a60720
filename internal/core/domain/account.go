package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents a financial account owned by a single user.
type Account struct {
	AccountID    string          `json:"accountID"` // Primary Key (UUID)
	OwnerID      string          `json:"ownerID"`   // FK -> users.user_id
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	IsActive     bool            `json:"isActive"`
	Balance      decimal.Decimal `json:"balance"`
	AuditFields
}
