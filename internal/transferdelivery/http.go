// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	CreateTransfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error)
	GetTransfer(ctx context.Context, id string) (domain.Transfer, error)
	ListTransfers(ctx context.Context, arg domain.ListTransfersParams) []domain.Transfer
	UpdateTransfer(ctx context.Context, id string, arg domain.UpdateTransferParams) (domain.Transfer, bool, error)
	DeleteTransfer(ctx context.Context, id string) (bool, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type data struct {
	Transfer domain.Transfer `json:"transfer"`
}

type dataTransfers struct {
	Transfers []domain.Transfer `json:"transfers"`
}

type dataDeleted struct {
	ID string `json:"id"`
}

// recipientRequest keeps a null or missing amount as an invalid decimal.
type recipientRequest struct {
	AccountID string              `json:"account_id" binding:"required"`
	Amount    decimal.NullDecimal `json:"amount"`
}

type createRequest struct {
	Date            string              `json:"date"`
	SourceAccountID string              `json:"source_account_id" binding:"required"`
	Recipients      []recipientRequest  `json:"recipients" binding:"required,min=1,dive"`
	Term            int                 `json:"term" binding:"omitempty,min=1"`
	InterestRate    decimal.NullDecimal `json:"interest_rate"`
}

func toRecipients(req []recipientRequest) []domain.Recipient {
	recipients := make([]domain.Recipient, 0, len(req))
	for _, r := range req {
		recipients = append(recipients, domain.Recipient{AccountID: r.AccountID, Amount: r.Amount})
	}

	return recipients
}

// Create handles http request to record a transfer from one account to one or more recipients.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var date time.Time

	if req.Date != "" {
		d, err := web.ParseDate(req.Date)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		date = d
	}

	arg := domain.CreateTransferParams{
		Date:            date,
		SourceAccountID: req.SourceAccountID,
		Recipients:      toRecipients(req.Recipients),
		Term:            req.Term,
		InterestRate:    req.InterestRate,
	}

	transfer, err := h.service.CreateTransfer(ctx, arg)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{transfer}, err))
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to get transfer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	transfer, err := h.service.GetTransfer(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTransferNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{transfer}})
}

type listRequest struct {
	SourceAccountID string `form:"source_account_id"`
}

// List handles http request to list transfers, optionally by source account.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	transfers := h.service.ListTransfers(ctx, domain.ListTransfersParams{SourceAccountID: req.SourceAccountID})

	gctx.JSON(http.StatusOK, web.Response{Data: dataTransfers{transfers}})
}

type updateRequest struct {
	Date            string              `json:"date" binding:"required"`
	SourceAccountID string              `json:"source_account_id" binding:"required"`
	Recipients      []recipientRequest  `json:"recipients" binding:"required,min=1,dive"`
	Term            int                 `json:"term" binding:"required,min=1"`
	InterestRate    decimal.NullDecimal `json:"interest_rate"`
}

// Update handles http request to replace the transfer content.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if !req.InterestRate.Valid {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "InterestRate is required"})
		return
	}

	date, err := web.ParseDate(req.Date)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.UpdateTransferParams{
		Date:            date,
		SourceAccountID: req.SourceAccountID,
		Recipients:      toRecipients(req.Recipients),
		Term:            req.Term,
		InterestRate:    req.InterestRate.Decimal,
	}

	transfer, ok, err := h.service.UpdateTransfer(ctx, uri.ID, arg)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if !ok {
		gctx.Status(http.StatusNoContent)
		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{transfer}, err))
}

// Delete handles http request to revert and remove the transfer.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	deleted, err := h.service.DeleteTransfer(ctx, uri.ID)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if !deleted {
		gctx.Status(http.StatusNoContent)
		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(dataDeleted{uri.ID}, err))
}
