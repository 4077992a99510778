package ledger

import (
	"context"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// RecipientVolumes sums amounts credited to savings and investment accounts per calendar month.
//
// Only months in which any transfer happened are reported, in calendar order.
// Accounts appear in the order they were first credited. Invalid amounts are skipped.
func (lg *Ledger) RecipientVolumes(ctx context.Context) []domain.AccountVolume {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	transfers := lg.transfers.List(domain.ListTransfersParams{})

	var seenMonth [13]bool

	type series struct {
		account domain.Account
		months  [13]decimal.Decimal
	}

	var (
		order  []string
		byID   = map[string]*series{}
		result = []domain.AccountVolume{}
	)

	for _, t := range transfers {
		m := t.Date.UTC().Month()
		seenMonth[m] = true

		for _, r := range t.Recipients {
			a, ok := lg.accounts.Get(r.AccountID)
			if !ok || (a.Type != domain.Savings && a.Type != domain.Investment) {
				continue
			}

			s, ok := byID[a.ID]
			if !ok {
				s = &series{account: a}
				byID[a.ID] = s
				order = append(order, a.ID)
			}

			if r.Amount.Valid {
				s.months[m] = s.months[m].Add(r.Amount.Decimal)
			}
		}
	}

	for _, id := range order {
		s := byID[id]
		v := domain.AccountVolume{
			AccountID:   s.account.ID,
			AccountName: s.account.Name,
			Months:      []domain.MonthVolume{},
		}

		for m := time.January; m <= time.December; m++ {
			if !seenMonth[m] {
				continue
			}

			v.Months = append(v.Months, domain.MonthVolume{
				Month:  m.String()[:3],
				Amount: s.months[m],
			})
		}

		result = append(result, v)
	}

	return result
}
