// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"github.com/go-petr/pet-ledger/internal/domain"
)

// Store holds recorded transfers in memory in creation order.
type Store struct {
	transfers []domain.Transfer
}

// NewStore returns an empty transfer Store.
func NewStore() *Store {
	return &Store{}
}

// Create appends the transfer and then returns it.
func (s *Store) Create(t domain.Transfer) domain.Transfer {
	t.Recipients = domain.CopyRecipients(t.Recipients)
	s.transfers = append(s.transfers, t)

	return clone(t)
}

// Get returns the transfer with the given id.
func (s *Store) Get(id string) (domain.Transfer, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Transfer{}, false
	}

	return clone(s.transfers[i]), true
}

// List returns the transfers matching the given filter.
func (s *Store) List(arg domain.ListTransfersParams) []domain.Transfer {
	items := []domain.Transfer{}

	for _, t := range s.transfers {
		if arg.SourceAccountID != "" && t.SourceAccountID != arg.SourceAccountID {
			continue
		}

		if arg.AccountID != "" && !t.References(arg.AccountID) {
			continue
		}

		items = append(items, clone(t))
	}

	return items
}

// Replace stores t in place of the transfer with the same id.
func (s *Store) Replace(t domain.Transfer) bool {
	i := s.index(t.ID)
	if i < 0 {
		return false
	}

	t.Recipients = domain.CopyRecipients(t.Recipients)
	s.transfers[i] = t

	return true
}

// Delete removes the transfer with the given id.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.transfers = append(s.transfers[:i], s.transfers[i+1:]...)

	return true
}

// DeleteByAccount removes every transfer referencing the account and returns the removed ones.
func (s *Store) DeleteByAccount(accountID string) []domain.Transfer {
	kept := s.transfers[:0]
	removed := []domain.Transfer{}

	for _, t := range s.transfers {
		if t.References(accountID) {
			removed = append(removed, t)
			continue
		}

		kept = append(kept, t)
	}

	s.transfers = kept

	return removed
}

// ReplaceAll swaps the whole collection, used when a snapshot is loaded.
func (s *Store) ReplaceAll(transfers []domain.Transfer) {
	s.transfers = make([]domain.Transfer, 0, len(transfers))

	for _, t := range transfers {
		s.transfers = append(s.transfers, clone(t))
	}
}

func (s *Store) index(id string) int {
	for i := range s.transfers {
		if s.transfers[i].ID == id {
			return i
		}
	}

	return -1
}

func clone(t domain.Transfer) domain.Transfer {
	t.Recipients = domain.CopyRecipients(t.Recipients)
	return t
}
