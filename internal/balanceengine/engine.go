// Package balanceengine applies and reverses the balance effect of a transfer.
package balanceengine

import (
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Direction tells Engine whether to apply a transfer effect or undo it.
type Direction int

const (
	// Apply debits the source and credits the recipients.
	Apply Direction = iota
	// Revert credits the source and debits the recipients.
	Revert
)

func (d Direction) String() string {
	if d == Revert {
		return "revert"
	}

	return "apply"
}

// AccountRepo provides balance mutation needed by Engine.
type AccountRepo interface {
	AddBalance(id string, delta decimal.NullDecimal) (domain.Account, bool)
}

// Engine moves funds between accounts for recorded events.
type Engine struct {
	accounts AccountRepo
}

// New returns Engine working on the given accounts.
func New(ar AccountRepo) *Engine {
	return &Engine{accounts: ar}
}

// ApplyTransferEffect debits sourceID by the sum of recipient amounts and credits every recipient,
// or does the exact inverse when dir is Revert.
//
// Missing accounts are skipped. An invalid amount resets the touched balances to zero.
func (e *Engine) ApplyTransferEffect(sourceID string, recipients []domain.Recipient, dir Direction) {
	total := domain.SumRecipients(recipients)

	if dir == Apply {
		e.accounts.AddBalance(sourceID, negate(total))
	} else {
		e.accounts.AddBalance(sourceID, total)
	}

	for _, r := range recipients {
		if dir == Apply {
			e.accounts.AddBalance(r.AccountID, r.Amount)
		} else {
			e.accounts.AddBalance(r.AccountID, negate(r.Amount))
		}
	}
}

func negate(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}

	return decimal.NewNullDecimal(d.Decimal.Neg())
}
