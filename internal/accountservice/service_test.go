package accountservice

import (
	"context"
	"testing"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name      string
		accName   string
		accType   domain.AccountType
		checkResp func(t *testing.T, got domain.Account, err error)
	}{
		{
			name:    "OK",
			accName: randompkg.AccountName(),
			accType: domain.Savings,
			checkResp: func(t *testing.T, got domain.Account, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, got.ID)
				require.Equal(t, domain.Savings, got.Type)
				require.True(t, got.Balance.IsZero())
			},
		},
		{
			name:    "InvalidType",
			accName: randompkg.AccountName(),
			accType: domain.AccountType("pension"),
			checkResp: func(t *testing.T, got domain.Account, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAccountType)
				require.Empty(t, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			s := New(accountrepo.NewStore(), nil, nil, false)

			got, err := s.Create(context.Background(), tc.accName, tc.accType)
			tc.checkResp(t, got, err)
		})
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := New(accountrepo.NewStore(), nil, nil, false)

	want, err := s.Create(ctx, "My Savings", domain.Savings)
	require.NoError(t, err)

	got, err := s.Get(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := New(accountrepo.NewStore(), nil, nil, false)

	savings, _ := s.Create(ctx, "My Savings", domain.Savings)
	checking, _ := s.Create(ctx, "My Checking", domain.Checking)
	holiday, _ := s.Create(ctx, "Holiday savings", domain.Savings)

	testCases := []struct {
		name string
		arg  domain.ListAccountsParams
		want []domain.Account
	}{
		{
			name: "All",
			want: []domain.Account{savings, checking, holiday},
		},
		{
			name: "ByType",
			arg:  domain.ListAccountsParams{Type: domain.Savings},
			want: []domain.Account{savings, holiday},
		},
		{
			name: "ByNameCaseInsensitive",
			arg:  domain.ListAccountsParams{Name: "SAVINGS"},
			want: []domain.Account{savings, holiday},
		},
		{
			name: "ByTypeAndName",
			arg:  domain.ListAccountsParams{Type: domain.Savings, Name: "holi"},
			want: []domain.Account{holiday},
		},
		{
			name: "NoMatch",
			arg:  domain.ListAccountsParams{Type: domain.Borrowing},
			want: []domain.Account{},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, s.List(ctx, tc.arg))
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := accountrepo.NewStore()
	s := New(repo, nil, nil, false)

	a, _ := s.Create(ctx, "My Savings", domain.Savings)
	repo.AddBalance(a.ID, decimal.NewNullDecimal(randompkg.MoneyAmountBetween(1, 100)))
	before, _ := repo.Get(a.ID)

	got, ok, err := s.Update(ctx, a.ID, "Rainy day", domain.Investment)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Rainy day", got.Name)
	require.Equal(t, domain.Investment, got.Type)
	require.True(t, before.Balance.Equal(got.Balance))

	_, ok, err = s.Update(ctx, "missing", "x", domain.Savings)
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = s.Update(ctx, a.ID, "x", domain.AccountType("bogus"))
	require.ErrorIs(t, err, domain.ErrInvalidAccountType)
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name         string
		cascadeLoans bool
		exists       bool
		buildStubs   func(ts *MockTransferService, ls *MockLoanService, id string)
	}{
		{
			name:   "OK",
			exists: true,
			buildStubs: func(ts *MockTransferService, ls *MockLoanService, id string) {
				ts.EXPECT().DeleteByAccount(gomock.Any(), gomock.Eq(id)).Times(1).Return([]domain.Transfer{{ID: "t1"}})
				ls.EXPECT().DeleteByAccount(gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name:         "CascadeLoans",
			cascadeLoans: true,
			exists:       true,
			buildStubs: func(ts *MockTransferService, ls *MockLoanService, id string) {
				ts.EXPECT().DeleteByAccount(gomock.Any(), gomock.Eq(id)).Times(1).Return(nil)
				ls.EXPECT().DeleteByAccount(gomock.Any(), gomock.Eq(id)).Times(1).Return([]domain.Loan{{ID: "l1"}})
			},
		},
		{
			name: "MissingAccountStillCascades",
			buildStubs: func(ts *MockTransferService, ls *MockLoanService, id string) {
				ts.EXPECT().DeleteByAccount(gomock.Any(), gomock.Eq(id)).Times(1).Return(nil)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			repo := accountrepo.NewStore()
			ts := NewMockTransferService(ctrl)
			ls := NewMockLoanService(ctrl)
			s := New(repo, ts, ls, tc.cascadeLoans)

			id := "missing"
			if tc.exists {
				id = repo.Create("My Checking", domain.Checking).ID
			}

			tc.buildStubs(ts, ls, id)

			require.Equal(t, tc.exists, s.Delete(ctx, id))

			_, err := s.Get(ctx, id)
			require.ErrorIs(t, err, domain.ErrAccountNotFound)
		})
	}
}
