package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotPersisted indicates that the in-memory state changed but the snapshot could not be saved.
//
// It is a warning: the returned entity is valid and the change is kept.
var ErrNotPersisted = errors.New("snapshot not persisted")

// Snapshot is the full ledger state handed to and loaded from storage.
type Snapshot struct {
	Accounts  []Account  `json:"accounts"`
	Transfers []Transfer `json:"transfers"`
	Loans     []Loan     `json:"loans"`
}

// IsEmpty reports whether the snapshot holds no data at all.
func (s Snapshot) IsEmpty() bool {
	return len(s.Accounts) == 0 && len(s.Transfers) == 0 && len(s.Loans) == 0
}

// Event types published after ledger mutations.
const (
	EventAccountCreated  = "account.created"
	EventAccountUpdated  = "account.updated"
	EventAccountDeleted  = "account.deleted"
	EventTransferCreated = "transfer.created"
	EventTransferUpdated = "transfer.updated"
	EventTransferDeleted = "transfer.deleted"
	EventLoanCreated     = "loan.created"
	EventLoanUpdated     = "loan.updated"
	EventLoanDeleted     = "loan.deleted"
	EventLoanRepaid      = "loan.repaid"
)

// Event describes a committed ledger mutation.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// MonthVolume is the amount credited to an account during a calendar month.
type MonthVolume struct {
	Month  string          `json:"month"` // Jan..Dec
	Amount decimal.Decimal `json:"amount"`
}

// AccountVolume holds monthly credited volumes of a savings or investment account.
type AccountVolume struct {
	AccountID   string        `json:"account_id"`
	AccountName string        `json:"account_name"`
	Months      []MonthVolume `json:"months"`
}
