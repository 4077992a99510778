package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTransferNotFound indicates that the transfer is not found.
var ErrTransferNotFound = errors.New("transfer not found")

// Recipient is a single credited leg of a transfer.
//
// Amount is invalid when the incoming data carried no usable number.
// Such a leg still takes part in balance updates and clamps the touched balances to zero.
type Recipient struct {
	AccountID string              `json:"account_id"`
	Amount    decimal.NullDecimal `json:"amount"`
}

// Transfer holds data of one withdrawal distributed across one or more recipients.
//
// The source account is debited by the sum of all recipient amounts.
type Transfer struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	SourceAccountID string          `json:"source_account_id"`
	Recipients      []Recipient     `json:"recipients"`
	Term            int             `json:"term"`
	InterestRate    decimal.Decimal `json:"interest_rate"` // percent
}

// CreateTransferParams is the input data to record a transfer.
type CreateTransferParams struct {
	Date            time.Time           `json:"date"`
	SourceAccountID string              `json:"source_account_id"`
	Recipients      []Recipient         `json:"recipients"`
	Term            int                 `json:"term"`          // zero means default term
	InterestRate    decimal.NullDecimal `json:"interest_rate"` // invalid means default rate
}

// UpdateTransferParams holds the full replacement content of a transfer.
type UpdateTransferParams struct {
	Date            time.Time       `json:"date"`
	SourceAccountID string          `json:"source_account_id"`
	Recipients      []Recipient     `json:"recipients"`
	Term            int             `json:"term"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
}

// ListTransfersParams filters transfers. Zero values match everything.
type ListTransfersParams struct {
	SourceAccountID string `json:"source_account_id"`
	AccountID       string `json:"account_id"` // source or any recipient
}

// Total returns the sum of all recipient amounts.
//
// The sum is invalid if any amount is invalid.
func (t Transfer) Total() decimal.NullDecimal {
	return SumRecipients(t.Recipients)
}

// References reports whether the account is the source or one of the recipients.
func (t Transfer) References(accountID string) bool {
	if t.SourceAccountID == accountID {
		return true
	}

	for _, r := range t.Recipients {
		if r.AccountID == accountID {
			return true
		}
	}

	return false
}

// SumRecipients adds up recipient amounts. Any invalid amount makes the sum invalid.
func SumRecipients(recipients []Recipient) decimal.NullDecimal {
	sum := decimal.Zero

	for _, r := range recipients {
		if !r.Amount.Valid {
			return decimal.NullDecimal{}
		}

		sum = sum.Add(r.Amount.Decimal)
	}

	return decimal.NullDecimal{Decimal: sum, Valid: true}
}

// CopyRecipients returns a copy of the slice so stored transfers never share backing arrays with callers.
func CopyRecipients(recipients []Recipient) []Recipient {
	if recipients == nil {
		return []Recipient{}
	}

	out := make([]Recipient, len(recipients))
	copy(out, recipients)

	return out
}
