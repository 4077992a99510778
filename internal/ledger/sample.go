package ledger

import (
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// sampleData returns the demo state installed on first start.
// Balances already include the sample transfers, which are not applied again.
func sampleData(now time.Time) domain.Snapshot {
	now = now.UTC()
	rate := decimal.NewFromInt(5)

	amount := func(v int64) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	}

	return domain.Snapshot{
		Accounts: []domain.Account{
			{ID: "1", Name: "My Savings", Type: domain.Savings, Balance: decimal.NewFromInt(1000)},
			{ID: "2", Name: "My Checking", Type: domain.Checking, Balance: decimal.NewFromInt(500)},
			{ID: "3", Name: "My Investment", Type: domain.Investment, Balance: decimal.NewFromInt(2000)},
		},
		Transfers: []domain.Transfer{
			{
				ID:              "1",
				Date:            now,
				SourceAccountID: "2",
				Recipients:      []domain.Recipient{{AccountID: "1", Amount: amount(200)}},
				Term:            12,
				InterestRate:    rate,
			},
			{
				ID:              "2",
				Date:            now.AddDate(0, 0, -5),
				SourceAccountID: "2",
				Recipients:      []domain.Recipient{{AccountID: "3", Amount: amount(100)}},
				Term:            12,
				InterestRate:    rate,
			},
		},
		Loans: []domain.Loan{
			{
				ID:                 "1",
				SourceAccountID:    "3",
				RecipientAccountID: "2",
				Amount:             decimal.NewFromInt(100),
				StartDate:          now,
				EndDate:            now.AddDate(0, 0, 30),
				Term:               12,
				InterestRate:       rate,
			},
		},
	}
}
