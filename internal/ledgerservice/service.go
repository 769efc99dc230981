// Package ledgerservice manages business logic layer of the trade ledger.
package ledgerservice

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/fx-portfolio/internal/domain"
)

// Service executes trades and keeps the per-user trade history in memory.
// History is append-only in arrival order and resets on process restart.
type Service struct {
	mu      sync.Mutex
	history map[string][]domain.Trade
	now     func() time.Time
}

// New returns a ledger service with empty history.
func New() *Service {
	return NewWithClock(time.Now)
}

// NewWithClock returns a ledger service with an injected clock for tests.
func NewWithClock(now func() time.Time) *Service {
	return &Service{
		history: make(map[string][]domain.Trade),
		now:     now,
	}
}

// Execute computes the trade's converted amount, assigns its final status and
// appends it to the user's history. A trade with an exactly zero applied rate
// stays PENDING: it was taken against a degraded fallback rate.
func (s *Service) Execute(ctx context.Context, trade domain.Trade) domain.Trade {
	l := zerolog.Ctx(ctx)
	l.Info().Str("user_id", trade.UserID).Str("to_currency", trade.ToCurrency).Msg("executing trade")

	trade.ConvertedAmount = trade.USDAmount.Mul(trade.AppliedRate)

	if trade.AppliedRate.IsZero() {
		trade.Status = domain.StatusPending
	} else {
		trade.Status = domain.StatusCompleted
	}

	if trade.RequestedAt.IsZero() {
		trade.RequestedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[trade.UserID] = append(s.history[trade.UserID], trade)

	return trade
}

// History returns the user's executed trades in submission order. Unknown
// users get an empty slice.
func (s *Service) History(ctx context.Context, userID string) []domain.Trade {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	trades := make([]domain.Trade, len(s.history[userID]))
	copy(trades, s.history[userID])

	l.Info().Str("user_id", userID).Int("count", len(trades)).Msg("returning trade history")

	return trades
}
