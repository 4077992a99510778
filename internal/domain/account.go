// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAccountType indicates that the account type is not supported.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// AccountType is the category of an account.
type AccountType string

// Constants for all supported account types.
const (
	Savings    AccountType = "savings"
	Checking   AccountType = "checking"
	Investment AccountType = "investment"
	Lending    AccountType = "lending"
	Borrowing  AccountType = "borrowing"
)

// AccountTypes holds all the supported account types.
var AccountTypes = []AccountType{
	Savings,
	Checking,
	Investment,
	Lending,
	Borrowing,
}

// IsSupportedAccountType returns true if the account type is supported.
func IsSupportedAccountType(t string) bool {
	for _, at := range AccountTypes {
		if string(at) == t {
			return true
		}
	}

	return false
}

// Account holds a named balance of a specific category.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"` // can be negative
}

// ListAccountsParams filters accounts. Zero values match everything.
type ListAccountsParams struct {
	Type AccountType `json:"type"`
	Name string      `json:"name"` // case-insensitive substring
}
