// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds accounts in memory in creation order.
//
// Store is not safe for concurrent use; the owner serializes access.
type Store struct {
	accounts []domain.Account
}

// NewStore returns an empty account Store.
func NewStore() *Store {
	return &Store{}
}

// Create creates the account with zero balance and then returns it.
func (s *Store) Create(name string, t domain.AccountType) domain.Account {
	a := domain.Account{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    t,
		Balance: decimal.Zero,
	}

	s.accounts = append(s.accounts, a)

	return a
}

// Get returns the account with the given id.
func (s *Store) Get(id string) (domain.Account, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Account{}, false
	}

	return s.accounts[i], true
}

// List returns all accounts.
func (s *Store) List() []domain.Account {
	items := make([]domain.Account, len(s.accounts))
	copy(items, s.accounts)

	return items
}

// Update replaces the name and type of the account.
func (s *Store) Update(id, name string, t domain.AccountType) (domain.Account, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Account{}, false
	}

	s.accounts[i].Name = name
	s.accounts[i].Type = t

	return s.accounts[i], true
}

// Delete removes the account with the given id.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)

	return true
}

// AddBalance changes the account's balance and returns the changed account.
//
// An invalid delta resets the balance to zero instead of storing a broken value.
func (s *Store) AddBalance(id string, delta decimal.NullDecimal) (domain.Account, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Account{}, false
	}

	if !delta.Valid {
		s.accounts[i].Balance = decimal.Zero
	} else {
		s.accounts[i].Balance = s.accounts[i].Balance.Add(delta.Decimal)
	}

	return s.accounts[i], true
}

// Replace swaps the whole collection, used when a snapshot is loaded.
func (s *Store) Replace(accounts []domain.Account) {
	s.accounts = make([]domain.Account, len(accounts))
	copy(s.accounts, accounts)
}

func (s *Store) index(id string) int {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}

	return -1
}
