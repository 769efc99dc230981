package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount indicates a non-positive trade amount.
var ErrNegativeAmount = errors.New("amount must be positive")

// Trade statuses.
const (
	// StatusCreated marks a trade constructed by the orchestrator before submission.
	StatusCreated = "CREATED"
	// StatusPending marks a trade executed against a degraded (zero) rate.
	StatusPending = "PENDING"
	// StatusCompleted marks a fully executed trade.
	StatusCompleted = "COMPLETED"
)

// Trade holds a single USD to foreign currency exchange.
//
// ConvertedAmount is computed by the trade ledger on execution and is zero
// until then. Trades are append-only and never mutated after execution.
type Trade struct {
	UserID          string          `json:"user_id"`
	RequestedAt     time.Time       `json:"requested_at"`
	USDAmount       decimal.Decimal `json:"usd_amount"`
	ToCurrency      string          `json:"to_currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	AppliedRate     decimal.Decimal `json:"applied_rate"`
	Status          string          `json:"status"`
}

// NewTrade returns a trade in CREATED status for the given user and amount.
func NewTrade(userID string, usdAmount decimal.Decimal, toCurrency string, appliedRate decimal.Decimal) Trade {
	return Trade{
		UserID:      userID,
		RequestedAt: time.Now(),
		USDAmount:   usdAmount,
		ToCurrency:  toCurrency,
		AppliedRate: appliedRate,
		Status:      StatusCreated,
	}
}
