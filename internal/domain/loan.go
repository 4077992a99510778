package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrLoanNotFound indicates that the loan is not found.
var ErrLoanNotFound = errors.New("loan not found")

// Loan holds principal owed from a lender (source) to a borrower (recipient).
type Loan struct {
	ID                 string          `json:"id"`
	SourceAccountID    string          `json:"source_account_id"`
	RecipientAccountID string          `json:"recipient_account_id"`
	Amount             decimal.Decimal `json:"amount"` // outstanding principal, negative when over-repaid
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Term               int             `json:"term"`          // months
	InterestRate       decimal.Decimal `json:"interest_rate"` // percent
}

// CreateLoanParams is the input data to issue or replace a loan.
type CreateLoanParams struct {
	SourceAccountID    string          `json:"source_account_id"`
	RecipientAccountID string          `json:"recipient_account_id"`
	Amount             decimal.Decimal `json:"amount"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Term               int             `json:"term"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
}

// LoanRepayMode selects which accounts a repayment moves money between.
type LoanRepayMode string

const (
	// RepayCreditsRecipient credits the borrower by the repaid amount.
	RepayCreditsRecipient LoanRepayMode = "recipient"
	// RepayCreditsLender debits the borrower and credits the lender.
	RepayCreditsLender LoanRepayMode = "lender"
)
