// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"time"

	"github.com/go-petr/pet-ledger/internal/balanceengine"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Repo provides data access layer interface needed by transfer service layer.
type Repo interface {
	Create(t domain.Transfer) domain.Transfer
	Get(id string) (domain.Transfer, bool)
	List(arg domain.ListTransfersParams) []domain.Transfer
	Replace(t domain.Transfer) bool
	Delete(id string) bool
	DeleteByAccount(accountID string) []domain.Transfer
}

// AccountRepo provides account lookups needed by transfer service layer.
type AccountRepo interface {
	Get(id string) (domain.Account, bool)
}

// Engine applies balance effects of transfers.
//
//go:generate mockgen -destination engine_mock.go -package transferservice . Engine
type Engine interface {
	ApplyTransferEffect(sourceID string, recipients []domain.Recipient, dir balanceengine.Direction)
}

// Defaults holds values used when a new transfer omits term or interest rate.
type Defaults struct {
	Term         int
	InterestRate decimal.Decimal
}

// Service facilitates transfer service layer logic.
//
// Every recorded transfer has its balance effect applied; there is no pending state.
type Service struct {
	repo     Repo
	accounts AccountRepo
	engine   Engine
	defaults Defaults
	now      func() time.Time
}

// New return transfer service struct to manage transfer bussines logic.
func New(tr Repo, ar AccountRepo, e Engine, d Defaults) *Service {
	return &Service{
		repo:     tr,
		accounts: ar,
		engine:   e,
		defaults: d,
		now:      time.Now,
	}
}

// Create records the transfer and applies its effect.
//
// A checking source paying an investment recipient adds interest to that recipient's amount
// once, before recording. The source funds the uplift. Overdrafts are allowed.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransferParams) domain.Transfer {
	l := zerolog.Ctx(ctx)

	t := domain.Transfer{
		ID:              uuid.NewString(),
		Date:            arg.Date,
		SourceAccountID: arg.SourceAccountID,
		Recipients:      domain.CopyRecipients(arg.Recipients),
		Term:            arg.Term,
		InterestRate:    arg.InterestRate.Decimal,
	}

	if t.Date.IsZero() {
		t.Date = s.now().UTC()
	}

	if t.Term == 0 {
		t.Term = s.defaults.Term
	}

	if !arg.InterestRate.Valid {
		t.InterestRate = s.defaults.InterestRate
	}

	s.addInterest(&t)

	created := s.repo.Create(t)
	s.engine.ApplyTransferEffect(created.SourceAccountID, created.Recipients, balanceengine.Apply)

	l.Debug().
		Str("transfer_id", created.ID).
		Str("source_account_id", created.SourceAccountID).
		Int("recipients", len(created.Recipients)).
		Msg("transfer recorded")

	return created
}

func (s *Service) addInterest(t *domain.Transfer) {
	source, ok := s.accounts.Get(t.SourceAccountID)
	if !ok || source.Type != domain.Checking {
		return
	}

	for i, r := range t.Recipients {
		recipient, ok := s.accounts.Get(r.AccountID)
		if !ok || recipient.Type != domain.Investment || !r.Amount.Valid {
			continue
		}

		interest := r.Amount.Decimal.Mul(t.InterestRate).Div(hundred)
		t.Recipients[i].Amount = decimal.NewNullDecimal(r.Amount.Decimal.Add(interest))
	}
}

// Get returns the transfer with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Transfer, error) {
	t, ok := s.repo.Get(id)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("transfer_id", id).Msg("transfer not found")
		return t, domain.ErrTransferNotFound
	}

	return t, nil
}

// List returns transfers matching the filter.
func (s *Service) List(ctx context.Context, arg domain.ListTransfersParams) []domain.Transfer {
	return s.repo.List(arg)
}

// Update replaces the transfer content wholesale.
//
// The old effect is reverted with the old recipients before the new one is applied,
// so the result equals recording only the new transfer. Missing ids are a no-op.
func (s *Service) Update(ctx context.Context, id string, arg domain.UpdateTransferParams) (domain.Transfer, bool) {
	l := zerolog.Ctx(ctx)

	old, ok := s.repo.Get(id)
	if !ok {
		l.Debug().Str("transfer_id", id).Msg("update of missing transfer ignored")
		return domain.Transfer{}, false
	}

	s.engine.ApplyTransferEffect(old.SourceAccountID, old.Recipients, balanceengine.Revert)

	updated := domain.Transfer{
		ID:              id,
		Date:            arg.Date,
		SourceAccountID: arg.SourceAccountID,
		Recipients:      domain.CopyRecipients(arg.Recipients),
		Term:            arg.Term,
		InterestRate:    arg.InterestRate,
	}

	s.repo.Replace(updated)
	s.engine.ApplyTransferEffect(updated.SourceAccountID, updated.Recipients, balanceengine.Apply)

	l.Debug().Str("transfer_id", id).Msg("transfer updated")

	return updated, true
}

// Delete reverts the transfer effect and removes it. Missing ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) bool {
	t, ok := s.repo.Get(id)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("transfer_id", id).Msg("delete of missing transfer ignored")
		return false
	}

	s.engine.ApplyTransferEffect(t.SourceAccountID, t.Recipients, balanceengine.Revert)
	s.repo.Delete(id)

	return true
}

// DeleteByAccount removes all transfers referencing the account without reverting them.
//
// Used right before the account itself is removed; other accounts keep their balances.
func (s *Service) DeleteByAccount(ctx context.Context, accountID string) []domain.Transfer {
	removed := s.repo.DeleteByAccount(accountID)

	zerolog.Ctx(ctx).Debug().
		Str("account_id", accountID).
		Int("transfers", len(removed)).
		Msg("transfers cascaded")

	return removed
}
