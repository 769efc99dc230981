// Package rateengine computes current USD exchange rates for supported currencies.
package rateengine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/fx-portfolio/internal/domain"
	"github.com/go-petr/fx-portfolio/pkg/currencypkg"
)

// baseRates holds the static reference rate per currency before fluctuation.
var baseRates = map[string]decimal.Decimal{
	currencypkg.AUD: decimal.RequireFromString("1.5234"),
	currencypkg.CAD: decimal.RequireFromString("1.3425"),
	currencypkg.CHF: decimal.RequireFromString("0.9156"),
	currencypkg.EUR: decimal.RequireFromString("0.9217"),
	currencypkg.GBP: decimal.RequireFromString("0.7905"),
	currencypkg.JPY: decimal.RequireFromString("149.25"),
}

// seeds decorrelate the fluctuation of different currencies: each currency
// adds its own offset to the wall-clock second before the sin term, so no two
// currencies move in sync.
var seeds = map[string]int64{
	currencypkg.AUD: 1000,
	currencypkg.CAD: 2000,
	currencypkg.CHF: 3000,
	currencypkg.EUR: 4000,
	currencypkg.GBP: 5000,
	currencypkg.JPY: 6000,
}

const fluctuationScale = 0.2

// Engine produces exchange rates. It is stateless; every call recomputes
// from the current clock second.
type Engine struct {
	now func() time.Time
}

// New returns an engine using the system clock.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock returns an engine with an injected clock. Fixing the clock
// makes computed rates fully reproducible.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Compute returns the current rate for the given currency code.
func (e *Engine) Compute(currencyCode string) (domain.CurrencyRate, error) {
	baseRate, ok := baseRates[currencyCode]
	if !ok {
		return domain.CurrencyRate{}, domain.ErrUnsupportedCurrency
	}

	now := e.now()

	fluctuation := math.Sin(float64(now.Unix()+seeds[currencyCode])) * fluctuationScale

	rate := baseRate.Add(decimal.NewFromFloat(fluctuation)).Round(4)
	if s := currencypkg.Scale(currencyCode); s != 4 {
		rate = rate.Round(s)
	}

	return domain.CurrencyRate{
		CurrencyCode: currencyCode,
		Rate:         rate,
		ComputedAt:   now,
	}, nil
}

// ComputeAll returns one rate per supported currency in enumeration order.
func (e *Engine) ComputeAll() []domain.CurrencyRate {
	rates := make([]domain.CurrencyRate, 0, len(currencypkg.SupportedCurrencies))

	for _, code := range currencypkg.SupportedCurrencies {
		rate, err := e.Compute(code)
		if err != nil {
			// Supported currencies always have a base rate.
			continue
		}

		rates = append(rates, rate)
	}

	return rates
}
