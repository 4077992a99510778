// Package loanservice manages business logic layer of loans.
package loanservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/balanceengine"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// 100 (percent) * 12 (months in a year).
var percentYears = decimal.NewFromInt(1200)

// Repo provides data access layer interface needed by loan service layer.
type Repo interface {
	Create(l domain.Loan) domain.Loan
	Get(id string) (domain.Loan, bool)
	List() []domain.Loan
	Replace(l domain.Loan) bool
	AddAmount(id string, delta decimal.Decimal) (domain.Loan, bool)
	Delete(id string) bool
	DeleteByAccount(accountID string) []domain.Loan
}

// AccountRepo provides balance mutation needed by loan service layer.
type AccountRepo interface {
	AddBalance(id string, delta decimal.NullDecimal) (domain.Account, bool)
}

// Engine applies balance effects between accounts.
type Engine interface {
	ApplyTransferEffect(sourceID string, recipients []domain.Recipient, dir balanceengine.Direction)
}

// Service facilitates loan service layer logic.
//
// Issuing, editing and deleting loans never moves money; only repayments do.
type Service struct {
	repo     Repo
	accounts AccountRepo
	engine   Engine
	mode     domain.LoanRepayMode
}

// New returns loan service struct to manage loan bussines logic.
// An empty mode means domain.RepayCreditsRecipient.
func New(lr Repo, ar AccountRepo, e Engine, mode domain.LoanRepayMode) *Service {
	if mode == "" {
		mode = domain.RepayCreditsRecipient
	}

	return &Service{
		repo:     lr,
		accounts: ar,
		engine:   e,
		mode:     mode,
	}
}

// TotalRepaymentDue returns the outstanding amount plus simple interest over the loan term.
func TotalRepaymentDue(l domain.Loan) decimal.Decimal {
	interest := l.Amount.Mul(l.InterestRate).Mul(decimal.NewFromInt(int64(l.Term))).Div(percentYears)
	return l.Amount.Add(interest)
}

// Create issues the loan. No balances change.
func (s *Service) Create(ctx context.Context, arg domain.CreateLoanParams) domain.Loan {
	l := newLoan(uuid.NewString(), arg)
	created := s.repo.Create(l)

	zerolog.Ctx(ctx).Debug().
		Str("loan_id", created.ID).
		Str("amount", created.Amount.String()).
		Msg("loan issued")

	return created
}

// Get returns the loan with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Loan, error) {
	l, ok := s.repo.Get(id)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("loan_id", id).Msg("loan not found")
		return l, domain.ErrLoanNotFound
	}

	return l, nil
}

// List returns all loans.
func (s *Service) List(ctx context.Context) []domain.Loan {
	return s.repo.List()
}

// Update replaces all loan fields. No balances change; missing ids are a no-op.
func (s *Service) Update(ctx context.Context, id string, arg domain.CreateLoanParams) (domain.Loan, bool) {
	l := newLoan(id, arg)
	if !s.repo.Replace(l) {
		zerolog.Ctx(ctx).Debug().Str("loan_id", id).Msg("update of missing loan ignored")
		return domain.Loan{}, false
	}

	return l, true
}

// Delete removes the loan. No balances change; missing ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) bool {
	return s.repo.Delete(id)
}

// DeleteByAccount removes loans where the account is lender or borrower.
func (s *Service) DeleteByAccount(ctx context.Context, accountID string) []domain.Loan {
	return s.repo.DeleteByAccount(accountID)
}

// Repay lowers the outstanding amount and moves the repaid funds.
//
// The outstanding amount has no floor and goes negative on over-repayment.
// In the default mode the borrower (recipient) account is credited with the repaid amount.
// With domain.RepayCreditsLender the borrower is debited and the lender credited instead.
func (s *Service) Repay(ctx context.Context, loanID string, amount decimal.Decimal) (domain.Loan, bool) {
	l := zerolog.Ctx(ctx)

	loan, ok := s.repo.AddAmount(loanID, amount.Neg())
	if !ok {
		l.Debug().Str("loan_id", loanID).Msg("repayment of missing loan ignored")
		return domain.Loan{}, false
	}

	switch s.mode {
	case domain.RepayCreditsLender:
		recipients := []domain.Recipient{{AccountID: loan.SourceAccountID, Amount: decimal.NewNullDecimal(amount)}}
		s.engine.ApplyTransferEffect(loan.RecipientAccountID, recipients, balanceengine.Apply)
	default:
		s.accounts.AddBalance(loan.RecipientAccountID, decimal.NewNullDecimal(amount))
	}

	l.Debug().
		Str("loan_id", loan.ID).
		Str("repaid", amount.String()).
		Str("outstanding", loan.Amount.String()).
		Str("mode", string(s.mode)).
		Msg("loan repaid")

	return loan, true
}

func newLoan(id string, arg domain.CreateLoanParams) domain.Loan {
	return domain.Loan{
		ID:                 id,
		SourceAccountID:    arg.SourceAccountID,
		RecipientAccountID: arg.RecipientAccountID,
		Amount:             arg.Amount,
		StartDate:          arg.StartDate,
		EndDate:            arg.EndDate,
		Term:               arg.Term,
		InterestRate:       arg.InterestRate,
	}
}
