package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioEntry holds one user's balance in a single currency.
//
// Owner is the user's email. There is exactly one entry per (owner, currency)
// pair in the seeded data set.
type PortfolioEntry struct {
	ID          int64           `json:"id"`
	Owner       string          `json:"owner"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
	LastUpdated time.Time       `json:"last_updated"`
}
