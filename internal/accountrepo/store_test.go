package accountrepo

import (
	"testing"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomAccount(t *testing.T, s *Store) domain.Account {
	t.Helper()

	name := randompkg.AccountName()
	accountType := randompkg.AccountType()

	account := s.Create(name, accountType)

	require.NotEmpty(t, account.ID)
	require.Equal(t, name, account.Name)
	require.Equal(t, accountType, account.Type)
	require.True(t, account.Balance.IsZero())

	return account
}

func TestCreate(t *testing.T) {
	s := NewStore()

	a1 := createRandomAccount(t, s)
	a2 := createRandomAccount(t, s)

	require.NotEqual(t, a1.ID, a2.ID)
	require.Equal(t, []domain.Account{a1, a2}, s.List())
}

func TestGet(t *testing.T) {
	s := NewStore()
	account := createRandomAccount(t, s)

	got, ok := s.Get(account.ID)
	require.True(t, ok)
	require.Equal(t, account, got)

	got, ok = s.Get("missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestUpdate(t *testing.T) {
	s := NewStore()
	account := createRandomAccount(t, s)

	got, ok := s.Update(account.ID, "renamed", domain.Lending)
	require.True(t, ok)
	require.Equal(t, account.ID, got.ID)
	require.Equal(t, "renamed", got.Name)
	require.Equal(t, domain.Lending, got.Type)

	_, ok = s.Update("missing", "x", domain.Savings)
	require.False(t, ok)
	require.Len(t, s.List(), 1)
}

func TestDelete(t *testing.T) {
	s := NewStore()
	a1 := createRandomAccount(t, s)
	a2 := createRandomAccount(t, s)

	require.True(t, s.Delete(a1.ID))
	require.False(t, s.Delete(a1.ID))
	require.Equal(t, []domain.Account{a2}, s.List())
}

func TestAddBalance(t *testing.T) {
	s := NewStore()
	account := createRandomAccount(t, s)

	testCases := []struct {
		name        string
		delta       decimal.NullDecimal
		wantBalance string
	}{
		{
			name:        "Credit",
			delta:       decimal.NewNullDecimal(decimal.RequireFromString("150.25")),
			wantBalance: "150.25",
		},
		{
			name:        "DebitBelowZero",
			delta:       decimal.NewNullDecimal(decimal.RequireFromString("-200")),
			wantBalance: "-49.75",
		},
		{
			name:        "InvalidDeltaClampsToZero",
			delta:       decimal.NullDecimal{},
			wantBalance: "0",
		},
		{
			name:        "CreditAfterClamp",
			delta:       decimal.NewNullDecimal(decimal.NewFromInt(10)),
			wantBalance: "10",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.AddBalance(account.ID, tc.delta)
			require.True(t, ok)
			require.Equal(t, tc.wantBalance, got.Balance.String())
		})
	}
}

func TestAddBalanceMissingAccount(t *testing.T) {
	s := NewStore()
	account := createRandomAccount(t, s)

	_, ok := s.AddBalance("missing", decimal.NewNullDecimal(decimal.NewFromInt(5)))
	require.False(t, ok)

	got, _ := s.Get(account.ID)
	require.True(t, got.Balance.IsZero())
}

func TestReplace(t *testing.T) {
	s := NewStore()
	createRandomAccount(t, s)

	loaded := []domain.Account{
		{ID: "1", Name: "My Savings", Type: domain.Savings, Balance: decimal.NewFromInt(1000)},
	}

	s.Replace(loaded)
	loaded[0].Name = "changed by caller"

	got, ok := s.Get("1")
	require.True(t, ok)
	require.Equal(t, "My Savings", got.Name)
	require.Len(t, s.List(), 1)
}
