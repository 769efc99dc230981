// Package ratesdelivery manages delivery layer of the rate provider.
package ratesdelivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/errorspkg"
	"github.com/go-petr/fx-portfolio/pkg/jsonresponse"
)

// Engine provides the rate computation interface needed by the delivery layer.
type Engine interface {
	Compute(currencyCode string) (domain.CurrencyRate, error)
	ComputeAll() []domain.CurrencyRate
}

// Handler facilitates rate provider delivery layer logic.
type Handler struct {
	engine Engine
}

// NewHandler returns a rates handler.
func NewHandler(e Engine) Handler {
	return Handler{engine: e}
}

type ratesData struct {
	Rates []domain.CurrencyRate `json:"rates"`
}

type ratesResponse struct {
	Data ratesData `json:"data"`
}

// All handles http request to get rates for all supported currencies.
func (h *Handler) All(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	rates := h.engine.ComputeAll()

	l.Info().Int("count", len(rates)).Msg("returning currency rates")

	gctx.JSON(http.StatusOK, ratesResponse{Data: ratesData{Rates: rates}})
}

type rateData struct {
	Rate domain.CurrencyRate `json:"rate"`
}

type rateResponse struct {
	Data rateData `json:"data"`
}

// Get handles http request to get the rate for one currency.
func (h *Handler) Get(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	currencyCode := gctx.Param("code")

	rate, err := h.engine.Compute(currencyCode)
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
