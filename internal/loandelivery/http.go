// Package loandelivery manages delivery layer of loans.
package loandelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	CreateLoan(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error)
	GetLoan(ctx context.Context, id string) (domain.Loan, error)
	ListLoans(ctx context.Context) []domain.Loan
	UpdateLoan(ctx context.Context, id string, arg domain.CreateLoanParams) (domain.Loan, bool, error)
	DeleteLoan(ctx context.Context, id string) (bool, error)
	RepayLoan(ctx context.Context, id string, amount decimal.Decimal) (domain.Loan, bool, error)
	TotalRepaymentDue(ctx context.Context, id string) (decimal.Decimal, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns loan handler.
func NewHandler(ls Service) *Handler {
	return &Handler{
		service: ls,
	}
}

type data struct {
	Loan domain.Loan `json:"loan"`
}

type dataLoans struct {
	Loans []domain.Loan `json:"loans"`
}

type dataDeleted struct {
	ID string `json:"id"`
}

type dataTotalDue struct {
	LoanID   string          `json:"loan_id"`
	TotalDue decimal.Decimal `json:"total_due"`
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

type loanRequest struct {
	SourceAccountID    string              `json:"source_account_id" binding:"required"`
	RecipientAccountID string              `json:"recipient_account_id" binding:"required"`
	Amount             decimal.NullDecimal `json:"amount"`
	StartDate          string              `json:"start_date" binding:"required"`
	EndDate            string              `json:"end_date" binding:"required"`
	Term               int                 `json:"term" binding:"required,min=1"`
	InterestRate       decimal.NullDecimal `json:"interest_rate"`
}

// params validates the numeric and date fields the binding tags cannot express.
func (r loanRequest) params() (domain.CreateLoanParams, error) {
	if !r.Amount.Valid {
		return domain.CreateLoanParams{}, errors.New("Amount is required")
	}

	if !r.InterestRate.Valid {
		return domain.CreateLoanParams{}, errors.New("InterestRate is required")
	}

	start, err := web.ParseDate(r.StartDate)
	if err != nil {
		return domain.CreateLoanParams{}, err
	}

	end, err := web.ParseDate(r.EndDate)
	if err != nil {
		return domain.CreateLoanParams{}, err
	}

	return domain.CreateLoanParams{
		SourceAccountID:    r.SourceAccountID,
		RecipientAccountID: r.RecipientAccountID,
		Amount:             r.Amount.Decimal,
		StartDate:          start,
		EndDate:            end,
		Term:               r.Term,
		InterestRate:       r.InterestRate.Decimal,
	}, nil
}

func (h *Handler) bindLoan(gctx *gin.Context) (domain.CreateLoanParams, bool) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req loanRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return domain.CreateLoanParams{}, false
	}

	arg, err := req.params()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return domain.CreateLoanParams{}, false
	}

	return arg, true
}

func (h *Handler) bindURI(gctx *gin.Context) (string, bool) {
	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return "", false
	}

	return uri.ID, true
}

// Create handles http request to issue a loan.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	arg, ok := h.bindLoan(gctx)
	if !ok {
		return
	}

	loan, err := h.service.CreateLoan(ctx, arg)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{loan}, err))
}

// Get handles http request to get loan.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := h.bindURI(gctx)
	if !ok {
		return
	}

	loan, err := h.service.GetLoan(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{loan}})
}

// List handles http request to list all loans.
func (h *Handler) List(gctx *gin.Context) {
	loans := h.service.ListLoans(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: dataLoans{loans}})
}

// Update handles http request to replace all loan fields.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := h.bindURI(gctx)
	if !ok {
		return
	}

	arg, ok := h.bindLoan(gctx)
	if !ok {
		return
	}

	loan, updated, err := h.service.UpdateLoan(ctx, id, arg)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if !updated {
		gctx.Status(http.StatusNoContent)
		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{loan}, err))
}

// Delete handles http request to remove the loan.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := h.bindURI(gctx)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteLoan(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if !deleted {
		gctx.Status(http.StatusNoContent)
		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(dataDeleted{id}, err))
}

type repayRequest struct {
	Amount decimal.NullDecimal `json:"amount"`
}

// Repay handles http request to record a repayment against the loan.
func (h *Handler) Repay(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, ok := h.bindURI(gctx)
	if !ok {
		return
	}

	var req repayRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if !req.Amount.Valid {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "Amount is required"})
		return
	}

	loan, repaid, err := h.service.RepayLoan(ctx, id, req.Amount.Decimal)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if !repaid {
		gctx.Status(http.StatusNoContent)
		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{loan}, err))
}

// TotalDue handles http request to get outstanding amount plus interest of the loan.
func (h *Handler) TotalDue(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := h.bindURI(gctx)
	if !ok {
		return
	}

	total, err := h.service.TotalRepaymentDue(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataTotalDue{LoanID: id, TotalDue: total}})
}
