package dto

import (
	"time"

	"github.com/SscSPs/object_dto/internal/core/domain"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// OpeningBalance is sent as a decimal string; a numeric 0 counts as missing.
type CreateAccountRequest struct {
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	CurrencyCode   string             `json:"currencyCode"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	CurrencyCode  string             `json:"currencyCode"`
	Balance       decimal.Decimal    `json:"balance"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// AccountResponseShape lists the keys projected into account responses.
var AccountResponseShape = objectdto.ShapeOf[AccountResponse]()

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []objectdto.Record `json:"accounts"`
}
