// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"strings"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Create(name string, t domain.AccountType) domain.Account
	Get(id string) (domain.Account, bool)
	List() []domain.Account
	Update(id, name string, t domain.AccountType) (domain.Account, bool)
	Delete(id string) bool
}

// TransferService removes transfers that reference a deleted account.
//
//go:generate mockgen -destination cascade_mock.go -package accountservice . TransferService,LoanService
type TransferService interface {
	DeleteByAccount(ctx context.Context, accountID string) []domain.Transfer
}

// LoanService removes loans that reference a deleted account.
type LoanService interface {
	DeleteByAccount(ctx context.Context, accountID string) []domain.Loan
}

// Service facilitates account service layer logic.
type Service struct {
	repo         Repo
	transfers    TransferService
	loans        LoanService
	cascadeLoans bool
}

// New returns account service struct to manage account bussines logic.
//
// When cascadeLoans is false loans keep dangling account references after the account is deleted.
func New(ar Repo, ts TransferService, ls LoanService, cascadeLoans bool) *Service {
	return &Service{
		repo:         ar,
		transfers:    ts,
		loans:        ls,
		cascadeLoans: cascadeLoans,
	}
}

// Create creates account with zero balance.
func (s *Service) Create(ctx context.Context, name string, t domain.AccountType) (domain.Account, error) {
	if !domain.IsSupportedAccountType(string(t)) {
		return domain.Account{}, domain.ErrInvalidAccountType
	}

	account := s.repo.Create(name, t)

	zerolog.Ctx(ctx).Debug().
		Str("account_id", account.ID).
		Str("type", string(account.Type)).
		Msg("account created")

	return account, nil
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	account, ok := s.repo.Get(id)
	if !ok {
		return account, domain.ErrAccountNotFound
	}

	return account, nil
}

// List returns accounts matching the filter in creation order.
func (s *Service) List(ctx context.Context, arg domain.ListAccountsParams) []domain.Account {
	accounts := s.repo.List()
	name := strings.ToLower(arg.Name)

	result := make([]domain.Account, 0, len(accounts))

	for _, a := range accounts {
		if arg.Type != "" && a.Type != arg.Type {
			continue
		}

		if name != "" && !strings.Contains(strings.ToLower(a.Name), name) {
			continue
		}

		result = append(result, a)
	}

	return result
}

// Update changes name and type of the account. The balance is left untouched.
// The returned bool is false if the account does not exist.
func (s *Service) Update(ctx context.Context, id, name string, t domain.AccountType) (domain.Account, bool, error) {
	if !domain.IsSupportedAccountType(string(t)) {
		return domain.Account{}, false, domain.ErrInvalidAccountType
	}

	account, ok := s.repo.Update(id, name, t)

	return account, ok, nil
}

// Delete removes every transfer referencing the account and then the account itself.
//
// Removed transfers are not reverted, so balances of the remaining accounts stay as they are.
// The cascade runs even when the account does not exist.
func (s *Service) Delete(ctx context.Context, id string) bool {
	l := zerolog.Ctx(ctx)

	removed := s.transfers.DeleteByAccount(ctx, id)

	var removedLoans int
	if s.cascadeLoans {
		removedLoans = len(s.loans.DeleteByAccount(ctx, id))
	}

	deleted := s.repo.Delete(id)

	l.Debug().
		Str("account_id", id).
		Bool("deleted", deleted).
		Int("removed_transfers", len(removed)).
		Int("removed_loans", removedLoans).
		Msg("account delete")

	return deleted
}
