// Package dashboarddelivery serves aggregated ledger views.
package dashboarddelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides the aggregation needed by dashboard delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package dashboarddelivery
type Service interface {
	RecipientVolumes(ctx context.Context) []domain.AccountVolume
}

// Handler facilitates dashboard delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns dashboard handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type dataVolumes struct {
	Volumes []domain.AccountVolume `json:"volumes"`
}

// Volumes handles http request to get monthly credited volumes of savings and investment accounts.
func (h *Handler) Volumes(gctx *gin.Context) {
	volumes := h.service.RecipientVolumes(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: dataVolumes{volumes}})
}
