package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/eventpub"
	"github.com/go-petr/pet-ledger/internal/snapshotrepo"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/google/go-cmp/cmp"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var equateDecimal = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

var errDiskFull = errors.New("disk full")

// flakyRepo fails every save while failing is set.
type flakyRepo struct {
	*snapshotrepo.RepoMem
	failing bool
}

func (r *flakyRepo) Save(ctx context.Context, s domain.Snapshot) error {
	if r.failing {
		return errDiskFull
	}

	return r.RepoMem.Save(ctx, s)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func defaultOptions() Options {
	return Options{
		Defaults: transferservice.Defaults{Term: 12, InterestRate: dec("5")},
	}
}

func newTestLedger(t *testing.T, opts Options) (*Ledger, *snapshotrepo.RepoMem, *eventpub.Recorder) {
	t.Helper()

	repo := snapshotrepo.NewRepoMem()
	events := &eventpub.Recorder{}
	lg := New(repo, events, opts)

	require.NoError(t, lg.Load(context.Background()))

	return lg, repo, events
}

func requireBalance(t *testing.T, lg *Ledger, id, want string) {
	t.Helper()

	a, err := lg.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.True(t, dec(want).Equal(a.Balance), "account %s: want %s, got %s", a.Name, want, a.Balance)
}

func TestLoadSeedsSampleData(t *testing.T) {
	testCases := []struct {
		name          string
		seed          bool
		wantAccounts  int
		wantTransfers int
		wantLoans     int
		wantSaves     int
	}{
		{
			name:          "Seed",
			seed:          true,
			wantAccounts:  3,
			wantTransfers: 2,
			wantLoans:     1,
			wantSaves:     1,
		},
		{
			name: "NoSeed",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.SeedSampleData = tc.seed

			lg, repo, _ := newTestLedger(t, opts)

			snap := lg.Snapshot()
			require.Len(t, snap.Accounts, tc.wantAccounts)
			require.Len(t, snap.Transfers, tc.wantTransfers)
			require.Len(t, snap.Loans, tc.wantLoans)
			require.Equal(t, tc.wantSaves, repo.Saves())
		})
	}
}

func TestSampleDataBalancesNotReapplied(t *testing.T) {
	opts := defaultOptions()
	opts.SeedSampleData = true

	lg, _, _ := newTestLedger(t, opts)

	requireBalance(t, lg, "1", "1000")
	requireBalance(t, lg, "2", "500")
	requireBalance(t, lg, "3", "2000")
}

func TestLoadRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := snapshotrepo.NewRepoMem()

	saved := sampleData(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	saved.Accounts[0].Balance = dec("42")
	require.NoError(t, repo.Save(ctx, saved))

	opts := defaultOptions()
	opts.SeedSampleData = true

	lg := New(repo, eventpub.Noop{}, opts)
	require.NoError(t, lg.Load(ctx))

	if diff := cmp.Diff(saved, lg.Snapshot(), equateDecimal); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, 1, repo.Saves())
}

func TestPersistenceWarning(t *testing.T) {
	ctx := context.Background()
	repo := &flakyRepo{RepoMem: snapshotrepo.NewRepoMem()}
	lg := New(repo, eventpub.Noop{}, defaultOptions())
	require.NoError(t, lg.Load(ctx))

	repo.failing = true

	a, err := lg.CreateAccount(ctx, "My Savings", domain.Savings)
	require.ErrorIs(t, err, domain.ErrNotPersisted)
	require.ErrorIs(t, err, errDiskFull)
	require.NotEmpty(t, a.ID)
	require.True(t, lg.Dirty())

	got, err := lg.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a, got)

	require.ErrorIs(t, lg.Flush(ctx), domain.ErrNotPersisted)
	require.True(t, lg.Dirty())

	repo.failing = false

	require.NoError(t, lg.Flush(ctx))
	require.False(t, lg.Dirty())

	stored, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, stored.Accounts, 1)
}

func TestScheduleFlush(t *testing.T) {
	ctx := context.Background()
	lg, _, _ := newTestLedger(t, defaultOptions())
	c := cron.New()

	_, err := lg.ScheduleFlush(ctx, c, "@every 30s")
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)

	_, err = lg.ScheduleFlush(ctx, c, "every now and then")
	require.Error(t, err)
}

func TestSaveWritesCleanLedger(t *testing.T) {
	ctx := context.Background()
	lg, repo, _ := newTestLedger(t, defaultOptions())

	require.Equal(t, 0, repo.Saves())
	require.NoError(t, lg.Flush(ctx))
	require.Equal(t, 0, repo.Saves())

	require.NoError(t, lg.Save(ctx))
	require.Equal(t, 1, repo.Saves())

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
}

func TestTransferLifecycle(t *testing.T) {
	ctx := context.Background()
	lg, _, events := newTestLedger(t, defaultOptions())

	checking, err := lg.CreateAccount(ctx, "My Checking", domain.Checking)
	require.NoError(t, err)
	savings, err := lg.CreateAccount(ctx, "My Savings", domain.Savings)
	require.NoError(t, err)
	investment, err := lg.CreateAccount(ctx, "My Investment", domain.Investment)
	require.NoError(t, err)

	transfer, err := lg.CreateTransfer(ctx, domain.CreateTransferParams{
		SourceAccountID: checking.ID,
		Recipients:      []domain.Recipient{{AccountID: investment.ID, Amount: amount("100")}},
	})
	require.NoError(t, err)

	requireBalance(t, lg, checking.ID, "-105")
	requireBalance(t, lg, investment.ID, "105")

	updated, ok, err := lg.UpdateTransfer(ctx, transfer.ID, domain.UpdateTransferParams{
		Date:            transfer.Date,
		SourceAccountID: checking.ID,
		Recipients:      []domain.Recipient{{AccountID: savings.ID, Amount: amount("50")}},
		Term:            transfer.Term,
		InterestRate:    transfer.InterestRate,
	})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, transfer.ID, updated.ID)

	requireBalance(t, lg, checking.ID, "-50")
	requireBalance(t, lg, savings.ID, "50")
	requireBalance(t, lg, investment.ID, "0")

	deleted, err := lg.DeleteTransfer(ctx, transfer.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = lg.DeleteTransfer(ctx, transfer.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	for _, id := range []string{checking.ID, savings.ID, investment.ID} {
		requireBalance(t, lg, id, "0")
	}

	var types []string
	for _, e := range events.Events() {
		types = append(types, e.Type)
	}

	require.Equal(t, []string{
		domain.EventAccountCreated,
		domain.EventAccountCreated,
		domain.EventAccountCreated,
		domain.EventTransferCreated,
		domain.EventTransferUpdated,
		domain.EventTransferDeleted,
	}, types)
}

func TestMissingTargetsAreNoops(t *testing.T) {
	ctx := context.Background()
	lg, repo, events := newTestLedger(t, defaultOptions())

	_, ok, err := lg.UpdateTransfer(ctx, "missing", domain.UpdateTransferParams{})
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = lg.UpdateLoan(ctx, "missing", domain.CreateLoanParams{})
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = lg.RepayLoan(ctx, "missing", dec("10"))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = lg.UpdateAccount(ctx, "missing", "x", domain.Savings)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = lg.DeleteLoan(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.Empty(t, events.Events())
	require.Zero(t, repo.Saves())

	_, err = lg.GetTransfer(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrTransferNotFound)

	_, err = lg.TotalRepaymentDue(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrLoanNotFound)
}

func TestDeleteAccountCascade(t *testing.T) {
	testCases := []struct {
		name         string
		cascadeLoans bool
		wantLoans    int
	}{
		{name: "KeepLoans", wantLoans: 1},
		{name: "CascadeLoans", cascadeLoans: true, wantLoans: 0},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			opts := defaultOptions()
			opts.CascadeLoans = tc.cascadeLoans

			lg, _, _ := newTestLedger(t, opts)

			a, _ := lg.CreateAccount(ctx, "A", domain.Savings)
			b, _ := lg.CreateAccount(ctx, "B", domain.Savings)
			c, _ := lg.CreateAccount(ctx, "C", domain.Savings)

			_, err := lg.CreateTransfer(ctx, domain.CreateTransferParams{
				SourceAccountID: a.ID,
				Recipients:      []domain.Recipient{{AccountID: b.ID, Amount: amount("100")}},
			})
			require.NoError(t, err)

			_, err = lg.CreateTransfer(ctx, domain.CreateTransferParams{
				SourceAccountID: b.ID,
				Recipients:      []domain.Recipient{{AccountID: c.ID, Amount: amount("30")}},
			})
			require.NoError(t, err)

			_, err = lg.CreateLoan(ctx, domain.CreateLoanParams{
				SourceAccountID:    a.ID,
				RecipientAccountID: b.ID,
				Amount:             dec("10"),
				Term:               12,
				InterestRate:       dec("5"),
			})
			require.NoError(t, err)

			deleted, err := lg.DeleteAccount(ctx, b.ID)
			require.NoError(t, err)
			require.True(t, deleted)

			require.Empty(t, lg.ListTransfers(ctx, domain.ListTransfersParams{}))
			require.Len(t, lg.ListLoans(ctx), tc.wantLoans)

			requireBalance(t, lg, a.ID, "-100")
			requireBalance(t, lg, c.ID, "30")

			_, err = lg.GetAccount(ctx, b.ID)
			require.ErrorIs(t, err, domain.ErrAccountNotFound)
		})
	}
}

func TestLoanLifecycle(t *testing.T) {
	ctx := context.Background()
	lg, _, events := newTestLedger(t, defaultOptions())

	lender, _ := lg.CreateAccount(ctx, "My Investment", domain.Investment)
	borrower, _ := lg.CreateAccount(ctx, "My Checking", domain.Checking)

	loan, err := lg.CreateLoan(ctx, domain.CreateLoanParams{
		SourceAccountID:    lender.ID,
		RecipientAccountID: borrower.ID,
		Amount:             dec("1000"),
		StartDate:          time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Term:               12,
		InterestRate:       dec("5"),
	})
	require.NoError(t, err)

	requireBalance(t, lg, lender.ID, "0")
	requireBalance(t, lg, borrower.ID, "0")

	due, err := lg.TotalRepaymentDue(ctx, loan.ID)
	require.NoError(t, err)
	require.True(t, dec("1050").Equal(due))

	repaid, ok, err := lg.RepayLoan(ctx, loan.ID, dec("400"))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, dec("600").Equal(repaid.Amount))
	requireBalance(t, lg, borrower.ID, "400")

	deleted, err := lg.DeleteLoan(ctx, loan.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	requireBalance(t, lg, borrower.ID, "400")

	last := events.Events()[len(events.Events())-1]
	require.Equal(t, domain.EventLoanDeleted, last.Type)
	require.Equal(t, loan.ID, last.EntityID)
}

func TestRecipientVolumes(t *testing.T) {
	ctx := context.Background()
	opts := defaultOptions()
	opts.SeedSampleData = true

	lg := New(snapshotrepo.NewRepoMem(), eventpub.Noop{}, opts)
	lg.now = func() time.Time { return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, lg.Load(ctx))

	_, err := lg.CreateTransfer(ctx, domain.CreateTransferParams{
		Date:            time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		SourceAccountID: "3",
		Recipients: []domain.Recipient{
			{AccountID: "1", Amount: amount("25")},
			{AccountID: "2", Amount: amount("999")},
			{AccountID: "1", Amount: decimal.NullDecimal{}},
		},
	})
	require.NoError(t, err)

	want := []domain.AccountVolume{
		{
			AccountID:   "1",
			AccountName: "My Savings",
			Months: []domain.MonthVolume{
				{Month: "Jan", Amount: dec("25")},
				{Month: "Mar", Amount: dec("200")},
			},
		},
		{
			AccountID:   "3",
			AccountName: "My Investment",
			Months: []domain.MonthVolume{
				{Month: "Jan", Amount: dec("0")},
				{Month: "Mar", Amount: dec("100")},
			},
		},
	}

	if diff := cmp.Diff(want, lg.RecipientVolumes(ctx), equateDecimal); diff != "" {
		t.Errorf("RecipientVolumes() mismatch (-want +got):\n%s", diff)
	}
}
