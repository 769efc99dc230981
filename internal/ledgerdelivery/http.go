// Package ledgerdelivery manages delivery layer of the trade ledger.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/jsonresponse"
)

// Service provides the ledger interface needed by the delivery layer.
type Service interface {
	Execute(ctx context.Context, trade domain.Trade) domain.Trade
	History(ctx context.Context, userID string) []domain.Trade
}

// Handler facilitates trade ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns a ledger handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type executeRequest struct {
	UserID      string          `json:"user_id" binding:"required"`
	USDAmount   decimal.Decimal `json:"usd_amount" binding:"required"`
	ToCurrency  string          `json:"to_currency" binding:"required,currency"`
	AppliedRate decimal.Decimal `json:"applied_rate"`
}

// Execute handles http request to execute a trade.
func (h *Handler) Execute(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req executeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			l.Info().Err(err).Send()
		}

		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	if !req.USDAmount.IsPositive() {
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(domain.ErrNegativeAmount))

		return
	}

	h.service.Execute(ctx, domain.NewTrade(req.UserID, req.USDAmount, req.ToCurrency, req.AppliedRate))

	gctx.Status(http.StatusNoContent)
}

type historyData struct {
	Trades []domain.Trade `json:"trades"`
}

type historyResponse struct {
	Data historyData `json:"data"`
}

// History handles http request to get a user's trade history.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	trades := h.service.History(ctx, gctx.Param("userId"))

	gctx.JSON(http.StatusOK, historyResponse{Data: historyData{Trades: trades}})
}
