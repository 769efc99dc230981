// Package portfoliodelivery manages delivery layer of the portfolio orchestrator.
package portfoliodelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/errorspkg"
	"github.com/go-petr/fx-portfolio/pkg/jsonresponse"
)

// Service provides the orchestration interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package portfoliodelivery
type Service interface {
	GetPortfolio(ctx context.Context, userID string) []domain.PortfolioEntry
	GetAllCurrentRates(ctx context.Context) []domain.CurrencyRate
	GetCurrentRate(ctx context.Context, currencyCode string) (domain.CurrencyRate, error)
	ExecuteTrade(ctx context.Context, trade domain.Trade) error
	GetAllTrades(ctx context.Context, userID string) []domain.Trade
}

// UserDirectory provides read-only user reference data.
type UserDirectory interface {
	Users() []domain.User
	User(email string) (domain.User, bool)
}

// Handler facilitates portfolio delivery layer logic.
type Handler struct {
	service Service
	users   UserDirectory
}

// NewHandler returns a portfolio handler.
func NewHandler(s Service, users UserDirectory) Handler {
	return Handler{service: s, users: users}
}

type portfolioData struct {
	Entries []domain.PortfolioEntry `json:"entries"`
}

type portfolioResponse struct {
	Data portfolioData `json:"data"`
}

// GetPortfolio handles http request to get a user's balances.
func (h *Handler) GetPortfolio(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	entries := h.service.GetPortfolio(ctx, gctx.Param("userId"))

	gctx.JSON(http.StatusOK, portfolioResponse{Data: portfolioData{Entries: entries}})
}

type ratesData struct {
	Rates []domain.CurrencyRate `json:"rates"`
}

type ratesResponse struct {
	Data ratesData `json:"data"`
}

// AllRates handles http request to get all current rates.
func (h *Handler) AllRates(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rates := h.service.GetAllCurrentRates(ctx)

	gctx.JSON(http.StatusOK, ratesResponse{Data: ratesData{Rates: rates}})
}

type rateData struct {
	Rate domain.CurrencyRate `json:"rate"`
}

type rateResponse struct {
	Data rateData `json:"data"`
}

// GetRate handles http request to get the current rate for one currency.
func (h *Handler) GetRate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	currencyCode := gctx.Param("code")

	rate, err := h.service.GetCurrentRate(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCurrency) {
			l.Info().Err(err).Str("currency", currencyCode).Send()
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, rateResponse{Data: rateData{Rate: rate}})
}

type executeTradeRequest struct {
	UserID     string          `json:"user_id" binding:"required"`
	USDAmount  decimal.Decimal `json:"usd_amount" binding:"required"`
	ToCurrency string          `json:"to_currency" binding:"required,currency"`
}

// ExecuteTrade handles http request to trade USD into a target currency.
//
// The applied rate is the provider's current rate at request time; under a
// provider outage that rate is zero and the ledger will keep the trade
// PENDING.
func (h *Handler) ExecuteTrade(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req executeTradeRequest
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

	rate, err := h.service.GetCurrentRate(ctx, req.ToCurrency)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	trade := domain.NewTrade(req.UserID, req.USDAmount, req.ToCurrency, rate.Rate)

	if err := h.service.ExecuteTrade(ctx, trade); err != nil {
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	gctx.Status(http.StatusNoContent)
}

type usersData struct {
	Users []domain.User `json:"users"`
}

type usersResponse struct {
	Data usersData `json:"data"`
}

// GetUsers handles http request to list the seeded users.
func (h *Handler) GetUsers(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, usersResponse{Data: usersData{Users: h.users.Users()}})
}

type userData struct {
	User domain.User `json:"user"`
}

type userResponse struct {
	Data userData `json:"data"`
}

// GetUser handles http request to get a user's profile reference data.
func (h *Handler) GetUser(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	email := gctx.Param("userId")

	user, ok := h.users.User(email)
	if !ok {
		l.Info().Str("user_id", email).Msg("user not found")
		gctx.JSON(http.StatusNotFound, jsonresponse.Error(domain.ErrUserNotFound))

		return
	}

	gctx.JSON(http.StatusOK, userResponse{Data: userData{User: user}})
}

type tradesData struct {
	Trades []domain.Trade `json:"trades"`
}

type tradesResponse struct {
	Data tradesData `json:"data"`
}

// GetAllTrades handles http request to get a user's trade history.
func (h *Handler) GetAllTrades(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	trades := h.service.GetAllTrades(ctx, gctx.Param("userId"))

	gctx.JSON(http.StatusOK, tradesResponse{Data: tradesData{Trades: trades}})
}
