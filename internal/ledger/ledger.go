// Package ledger owns the ledger state and serializes every operation on it.
//
// Each mutation runs under a single mutex together with the snapshot save that follows it.
// A failed save keeps the in-memory change, marks the ledger dirty and is reported
// as a domain.ErrNotPersisted warning.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/balanceengine"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/loanrepo"
	"github.com/go-petr/pet-ledger/internal/loanservice"
	"github.com/go-petr/pet-ledger/internal/transferrepo"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SnapshotRepo loads and saves whole ledger snapshots.
type SnapshotRepo interface {
	Load(ctx context.Context) (domain.Snapshot, bool, error)
	Save(ctx context.Context, s domain.Snapshot) error
}

// Publisher receives an event after every committed mutation.
type Publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Options tunes ledger business rules.
type Options struct {
	Defaults       transferservice.Defaults
	RepayMode      domain.LoanRepayMode
	CascadeLoans   bool
	SeedSampleData bool
}

// Ledger holds accounts, transfers and loans of one process.
type Ledger struct {
	mu sync.Mutex

	accounts  *accountrepo.Store
	transfers *transferrepo.Store
	loans     *loanrepo.Store

	accountService  *accountservice.Service
	transferService *transferservice.Service
	loanService     *loanservice.Service

	snapshots SnapshotRepo
	publisher Publisher
	seed      bool
	dirty     bool
	now       func() time.Time
}

// New wires stores and services into an empty Ledger. Call Load to restore saved state.
func New(sr SnapshotRepo, p Publisher, opts Options) *Ledger {
	accounts := accountrepo.NewStore()
	transfers := transferrepo.NewStore()
	loans := loanrepo.NewStore()
	engine := balanceengine.New(accounts)

	ts := transferservice.New(transfers, accounts, engine, opts.Defaults)
	ls := loanservice.New(loans, accounts, engine, opts.RepayMode)

	return &Ledger{
		accounts:        accounts,
		transfers:       transfers,
		loans:           loans,
		accountService:  accountservice.New(accounts, ts, ls, opts.CascadeLoans),
		transferService: ts,
		loanService:     ls,
		snapshots:       sr,
		publisher:       p,
		seed:            opts.SeedSampleData,
		now:             time.Now,
	}
}

// Load restores the last saved snapshot.
//
// When storage holds no prior data and seeding is enabled, sample data is installed and saved.
func (lg *Ledger) Load(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	lg.mu.Lock()
	defer lg.mu.Unlock()

	snap, found, err := lg.snapshots.Load(ctx)
	if err != nil {
		l.Error().Err(err).Msg("cannot load snapshot")
		return fmt.Errorf("load snapshot: %w", err)
	}

	if !found {
		if !lg.seed {
			return nil
		}

		snap = sampleData(lg.now())
		lg.restore(snap)
		l.Info().Int("accounts", len(snap.Accounts)).Msg("sample data seeded")

		return lg.persist(ctx)
	}

	lg.restore(snap)

	l.Info().
		Int("accounts", len(snap.Accounts)).
		Int("transfers", len(snap.Transfers)).
		Int("loans", len(snap.Loans)).
		Msg("snapshot loaded")

	return nil
}

func (lg *Ledger) restore(s domain.Snapshot) {
	lg.accounts.Replace(s.Accounts)
	lg.transfers.ReplaceAll(s.Transfers)
	lg.loans.ReplaceAll(s.Loans)
}

// Snapshot returns a copy of the current state.
func (lg *Ledger) Snapshot() domain.Snapshot {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.snapshot()
}

func (lg *Ledger) snapshot() domain.Snapshot {
	return domain.Snapshot{
		Accounts:  lg.accounts.List(),
		Transfers: lg.transfers.List(domain.ListTransfersParams{}),
		Loans:     lg.loans.List(),
	}
}

// Dirty reports whether the last snapshot save failed.
func (lg *Ledger) Dirty() bool {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.dirty
}

// Flush saves the snapshot if an earlier save failed.
func (lg *Ledger) Flush(ctx context.Context) error {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	if !lg.dirty {
		return nil
	}

	return lg.persist(ctx)
}

// Save writes the current state whether or not the ledger is dirty.
func (lg *Ledger) Save(ctx context.Context) error {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.persist(ctx)
}

// persist must be called with mu held.
func (lg *Ledger) persist(ctx context.Context) error {
	if err := lg.snapshots.Save(ctx, lg.snapshot()); err != nil {
		lg.dirty = true
		zerolog.Ctx(ctx).Warn().Err(err).Msg("snapshot not persisted, change kept in memory")

		return fmt.Errorf("%w: %w", domain.ErrNotPersisted, err)
	}

	lg.dirty = false

	return nil
}

// commit persists the state and publishes the event. Publishing failures are only logged.
func (lg *Ledger) commit(ctx context.Context, eventType, entityID string, payload any) error {
	err := lg.persist(ctx)

	e := domain.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: lg.now().UTC(),
		Payload:    payload,
	}

	if pubErr := lg.publisher.Publish(ctx, e); pubErr != nil {
		zerolog.Ctx(ctx).Error().Err(pubErr).Str("event_type", eventType).Msg("cannot publish event")
	}

	return err
}

// CreateAccount creates account with zero balance.
func (lg *Ledger) CreateAccount(ctx context.Context, name string, t domain.AccountType) (domain.Account, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	a, err := lg.accountService.Create(ctx, name, t)
	if err != nil {
		return a, err
	}

	return a, lg.commit(ctx, domain.EventAccountCreated, a.ID, a)
}

// GetAccount returns account for the given account ID.
func (lg *Ledger) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.accountService.Get(ctx, id)
}

// ListAccounts returns accounts matching the filter.
func (lg *Ledger) ListAccounts(ctx context.Context, arg domain.ListAccountsParams) []domain.Account {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.accountService.List(ctx, arg)
}

// UpdateAccount changes name and type of the account. The bool is false if it does not exist.
func (lg *Ledger) UpdateAccount(ctx context.Context, id, name string, t domain.AccountType) (domain.Account, bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	a, ok, err := lg.accountService.Update(ctx, id, name, t)
	if err != nil || !ok {
		return a, ok, err
	}

	return a, true, lg.commit(ctx, domain.EventAccountUpdated, a.ID, a)
}

// DeleteAccount removes the account and every transfer referencing it.
//
// The snapshot is saved even if the account was missing, since the cascade may have removed transfers.
func (lg *Ledger) DeleteAccount(ctx context.Context, id string) (bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	deleted := lg.accountService.Delete(ctx, id)

	if !deleted {
		return false, lg.persist(ctx)
	}

	return true, lg.commit(ctx, domain.EventAccountDeleted, id, nil)
}

// CreateTransfer records the transfer and applies its balance effect.
func (lg *Ledger) CreateTransfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	t := lg.transferService.Create(ctx, arg)

	return t, lg.commit(ctx, domain.EventTransferCreated, t.ID, t)
}

// GetTransfer returns the transfer with the given id.
func (lg *Ledger) GetTransfer(ctx context.Context, id string) (domain.Transfer, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.transferService.Get(ctx, id)
}

// ListTransfers returns transfers matching the filter in recording order.
func (lg *Ledger) ListTransfers(ctx context.Context, arg domain.ListTransfersParams) []domain.Transfer {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.transferService.List(ctx, arg)
}

// UpdateTransfer replaces the transfer, moving its balance effect accordingly.
func (lg *Ledger) UpdateTransfer(ctx context.Context, id string, arg domain.UpdateTransferParams) (domain.Transfer, bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	t, ok := lg.transferService.Update(ctx, id, arg)
	if !ok {
		return t, false, nil
	}

	return t, true, lg.commit(ctx, domain.EventTransferUpdated, t.ID, t)
}

// DeleteTransfer reverts and removes the transfer.
func (lg *Ledger) DeleteTransfer(ctx context.Context, id string) (bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	if !lg.transferService.Delete(ctx, id) {
		return false, nil
	}

	return true, lg.commit(ctx, domain.EventTransferDeleted, id, nil)
}

// CreateLoan issues the loan.
func (lg *Ledger) CreateLoan(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	loan := lg.loanService.Create(ctx, arg)

	return loan, lg.commit(ctx, domain.EventLoanCreated, loan.ID, loan)
}

// GetLoan returns the loan with the given id.
func (lg *Ledger) GetLoan(ctx context.Context, id string) (domain.Loan, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.loanService.Get(ctx, id)
}

// ListLoans returns all loans.
func (lg *Ledger) ListLoans(ctx context.Context) []domain.Loan {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.loanService.List(ctx)
}

// UpdateLoan replaces all loan fields.
func (lg *Ledger) UpdateLoan(ctx context.Context, id string, arg domain.CreateLoanParams) (domain.Loan, bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	loan, ok := lg.loanService.Update(ctx, id, arg)
	if !ok {
		return loan, false, nil
	}

	return loan, true, lg.commit(ctx, domain.EventLoanUpdated, loan.ID, loan)
}

// DeleteLoan removes the loan.
func (lg *Ledger) DeleteLoan(ctx context.Context, id string) (bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	if !lg.loanService.Delete(ctx, id) {
		return false, nil
	}

	return true, lg.commit(ctx, domain.EventLoanDeleted, id, nil)
}

// RepayLoan lowers the outstanding amount and moves the repaid funds.
func (lg *Ledger) RepayLoan(ctx context.Context, id string, amount decimal.Decimal) (domain.Loan, bool, error) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	loan, ok := lg.loanService.Repay(ctx, id, amount)
	if !ok {
		return loan, false, nil
	}

	payload := struct {
		Loan   domain.Loan     `json:"loan"`
		Amount decimal.Decimal `json:"amount"`
	}{loan, amount}

	return loan, true, lg.commit(ctx, domain.EventLoanRepaid, loan.ID, payload)
}

// TotalRepaymentDue returns outstanding amount plus simple interest of the loan.
func (lg *Ledger) TotalRepaymentDue(ctx context.Context, id string) (decimal.Decimal, error) {
	loan, err := lg.GetLoan(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	return loanservice.TotalRepaymentDue(loan), nil
}
