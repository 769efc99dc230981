// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedCurrency indicates that the currency code is not supported.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrUpstreamUnavailable indicates that an upstream dependency failed or timed out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// CurrencyRate holds the USD exchange rate for a single currency at a given instant.
type CurrencyRate struct {
	CurrencyCode string          `json:"currency_code"`
	Rate         decimal.Decimal `json:"rate"`
	ComputedAt   time.Time       `json:"computed_at"`
}
