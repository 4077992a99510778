// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateAccount(ctx context.Context, name string, t domain.AccountType) (domain.Account, error)
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	ListAccounts(ctx context.Context, arg domain.ListAccountsParams) []domain.Account
	UpdateAccount(ctx context.Context, id, name string, t domain.AccountType) (domain.Account, bool, error)
	DeleteAccount(ctx context.Context, id string) (bool, error)
	ListTransfers(ctx context.Context, arg domain.ListTransfersParams) []domain.Transfer
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type dataAccounts struct {
	Accounts []domain.Account `json:"accounts"`
}

type dataTransfers struct {
	Transfers []domain.Transfer `json:"transfers"`
}

type dataDeleted struct {
	ID string `json:"id"`
}

type createRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,accounttype"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	account, err := h.service.CreateAccount(ctx, req.Name, domain.AccountType(req.Type))
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		if errors.Is(err, domain.ErrInvalidAccountType) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{account}, err))
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	account, err := h.service.GetAccount(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}

type listRequest struct {
	Type string `form:"type" binding:"omitempty,accounttype"`
	Name string `form:"name"`
}

// List handles http request to list accounts filtered by type and name.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	accounts := h.service.ListAccounts(ctx, domain.ListAccountsParams{
		Type: domain.AccountType(req.Type),
		Name: req.Name,
	})

	gctx.JSON(http.StatusOK, web.Response{Data: dataAccounts{accounts}})
}

type updateRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,accounttype"`
}

// Update handles http request to rename account or change its type.
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

	account, ok, err := h.service.UpdateAccount(ctx, uri.ID, req.Name, domain.AccountType(req.Type))
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		if errors.Is(err, domain.ErrInvalidAccountType) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if !ok {
		gctx.Status(http.StatusNoContent)
		return
	}

	gctx.JSON(http.StatusOK, web.WithWarning(data{account}, err))
}

// Delete handles http request to delete account together with its transfers.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	deleted, err := h.service.DeleteAccount(ctx, uri.ID)
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

// ListTransfers handles http request to list transfers the account takes part in.
func (h *Handler) ListTransfers(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if _, err := h.service.GetAccount(ctx, uri.ID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	transfers := h.service.ListTransfers(ctx, domain.ListTransfersParams{AccountID: uri.ID})

	gctx.JSON(http.StatusOK, web.Response{Data: dataTransfers{transfers}})
}
