// Package loanrepo manages repository layer of loans.
package loanrepo

import (
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Store holds loans in memory in creation order.
type Store struct {
	loans []domain.Loan
}

// NewStore returns an empty loan Store.
func NewStore() *Store {
	return &Store{}
}

// Create appends the loan and then returns it.
func (s *Store) Create(l domain.Loan) domain.Loan {
	s.loans = append(s.loans, l)
	return l
}

// Get returns the loan with the given id.
func (s *Store) Get(id string) (domain.Loan, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Loan{}, false
	}

	return s.loans[i], true
}

// List returns all loans.
func (s *Store) List() []domain.Loan {
	items := make([]domain.Loan, len(s.loans))
	copy(items, s.loans)

	return items
}

// Replace stores l in place of the loan with the same id.
func (s *Store) Replace(l domain.Loan) bool {
	i := s.index(l.ID)
	if i < 0 {
		return false
	}

	s.loans[i] = l

	return true
}

// AddAmount changes the outstanding amount of the loan and returns the changed loan.
func (s *Store) AddAmount(id string, delta decimal.Decimal) (domain.Loan, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Loan{}, false
	}

	s.loans[i].Amount = s.loans[i].Amount.Add(delta)

	return s.loans[i], true
}

// Delete removes the loan with the given id.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.loans = append(s.loans[:i], s.loans[i+1:]...)

	return true
}

// DeleteByAccount removes every loan where the account is lender or borrower.
func (s *Store) DeleteByAccount(accountID string) []domain.Loan {
	kept := s.loans[:0]
	removed := []domain.Loan{}

	for _, l := range s.loans {
		if l.SourceAccountID == accountID || l.RecipientAccountID == accountID {
			removed = append(removed, l)
			continue
		}

		kept = append(kept, l)
	}

	s.loans = kept

	return removed
}

// ReplaceAll swaps the whole collection, used when a snapshot is loaded.
func (s *Store) ReplaceAll(loans []domain.Loan) {
	s.loans = make([]domain.Loan, len(loans))
	copy(s.loans, loans)
}

func (s *Store) index(id string) int {
	for i := range s.loans {
		if s.loans[i].ID == id {
			return i
		}
	}

	return -1
}
